package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Só os casos sintáticos: resolução DNS de domínios reais não
// pertence a um teste unitário.
func TestIsEmailDomainValidRejectsMalformed(t *testing.T) {
	assert.False(t, IsEmailDomainValid("sem-arroba"))
	assert.False(t, IsEmailDomainValid("jo@o@"))
	assert.False(t, IsEmailDomainValid(""))
	assert.False(t, IsEmailDomainValid("joao@dom inio.com"))
}
