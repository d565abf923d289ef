package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	t.Run("valid item", func(t *testing.T) {
		item, err := NewItem("iron", "Iron", 10)
		require.NoError(t, err)
		assert.Equal(t, "iron", item.ID())
		assert.Equal(t, "Iron", item.Name)
		assert.Equal(t, 10, item.SellValue)
	})

	t.Run("zero sell value is allowed", func(t *testing.T) {
		_, err := NewItem("dirt", "Dirt", 0)
		assert.NoError(t, err)
	})

	t.Run("negative sell value", func(t *testing.T) {
		_, err := NewItem("iron", "Iron", -1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidValue))
		assert.True(t, IsValidationError(err))
	})

	t.Run("empty id", func(t *testing.T) {
		_, err := NewItem("  ", "Iron", 1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidValue))
	})
}

func TestItem_RecordRoundTrip(t *testing.T) {
	original, err := NewItem("iron_ingot", "Iron Ingot", 20)
	require.NoError(t, err)

	data, err := json.Marshal(original.Record())
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"iron_ingot","name":"Iron Ingot","sell_value":20}`, string(data))

	var rec ItemRecord
	require.NoError(t, json.Unmarshal(data, &rec))
	restored, err := ItemFromRecord(rec)
	require.NoError(t, err)

	assert.Equal(t, original.ID(), restored.ID())
	assert.Equal(t, original.Name, restored.Name)
	assert.Equal(t, original.SellValue, restored.SellValue)
}

func TestItem_CloneIsIndependent(t *testing.T) {
	item, _ := NewItem("iron", "Iron", 10)
	c := item.Clone()
	c.Name = "Rusty Iron"
	assert.Equal(t, "Iron", item.Name)
	assert.Equal(t, item.ID(), c.ID())
}

func TestItem_Formatting(t *testing.T) {
	item, _ := NewItem("iron", "Iron", 10)
	assert.Equal(t, "Iron (ID: iron, Sell value: 10)", item.String())
	assert.Equal(t, "Item(id='iron', name='Iron', sell_value=10)", fmt.Sprintf("%#v", item))
}
