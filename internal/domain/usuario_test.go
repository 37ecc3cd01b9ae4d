package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"godelivery/internal/domain"
)

// TestResolverTipo garante que a resolução do tipo é determinística:
// CNPJ presente e não-branco define EMPRESA; qualquer outro caso, CLIENTE.
func TestResolverTipo(t *testing.T) {
	assert.Equal(t, domain.TipoEmpresa, domain.ResolverTipo("12.345.678/0001-00"))
	assert.Equal(t, domain.TipoCliente, domain.ResolverTipo(""))
	assert.Equal(t, domain.TipoCliente, domain.ResolverTipo("   "))
	assert.Equal(t, domain.TipoCliente, domain.ResolverTipo("\t"))
}
