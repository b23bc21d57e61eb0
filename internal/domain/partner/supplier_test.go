package partner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSupplier(t *testing.T) {
	t.Run("valid supplier", func(t *testing.T) {
		supplier, err := NewSupplier("Highland Tea Imports Ltd")

		require.NoError(t, err)
		assert.Equal(t, "Highland Tea Imports Ltd", supplier.Name)
		assert.Equal(t, SupplierStatusActive, supplier.Status)
		assert.Equal(t, "United Kingdom", supplier.Country)
		assert.True(t, supplier.IsActive())

		events := supplier.GetDomainEvents()
		require.Len(t, events, 1)
		assert.Equal(t, EventTypeSupplierCreated, events[0].EventType())
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewSupplier("  ")
		assert.Error(t, err)
	})
}

func TestSupplier_StatusTransitions(t *testing.T) {
	supplier, err := NewSupplier("Highland Tea Imports Ltd")
	require.NoError(t, err)

	t.Run("cannot activate active supplier", func(t *testing.T) {
		assert.Error(t, supplier.Activate())
	})

	t.Run("deactivate then activate", func(t *testing.T) {
		require.NoError(t, supplier.Deactivate())
		assert.False(t, supplier.IsActive())

		require.NoError(t, supplier.Activate())
		assert.True(t, supplier.IsActive())
	})

	t.Run("block records the reason", func(t *testing.T) {
		require.NoError(t, supplier.Block("repeated late deliveries"))
		assert.Equal(t, SupplierStatusBlocked, supplier.Status)
		assert.Equal(t, "repeated late deliveries", supplier.Notes)
		assert.Error(t, supplier.Block("again"))
	})
}

func TestSupplier_Details(t *testing.T) {
	supplier, err := NewSupplier("Highland Tea Imports Ltd")
	require.NoError(t, err)

	supplier.SetContact("Morag Fraser", "+44 131 555 0101", "orders@highlandtea.example")
	supplier.SetAddress("14 Leith Walk", "Edinburgh", "EH6 8NB", "")
	require.NoError(t, supplier.SetLeadTime(7))

	assert.Equal(t, "Morag Fraser", supplier.ContactName)
	assert.Equal(t, "Edinburgh", supplier.City)
	assert.Equal(t, "United Kingdom", supplier.Country)
	assert.Equal(t, 7, supplier.LeadTimeDays)

	assert.Error(t, supplier.SetLeadTime(-1))
}
