package transport

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bazarly/bazarly-go/models"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func Test_DecodeList_TopLevelArray(t *testing.T) {
	got, err := DecodeList[record]([]byte(`[{"id":"1","name":"a"},{"id":"2","name":"b"}]`))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].Name)
}

func Test_DecodeList_DataEnvelope(t *testing.T) {
	got, err := DecodeList[record]([]byte(`{"data":[{"id":"1","name":"a"}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func Test_DecodeList_ItemsEnvelope(t *testing.T) {
	got, err := DecodeList[record]([]byte(`{"items":[{"id":"1","name":"a"}],"total":10}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func Test_DecodeList_ProductsEnvelope(t *testing.T) {
	got, err := DecodeList[record]([]byte(`{"products":[{"id":"7","name":"p"}]}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "7", got[0].ID)
}

// data wins over items when both hold arrays; precedence is fixed.
func Test_DecodeList_PrecedenceDataBeforeItems(t *testing.T) {
	raw := []byte(`{"items":[{"id":"x"}],"data":[{"id":"1"}]}`)

	got, err := DecodeList[record](raw)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)
}

func Test_DecodeList_NestedDataObject(t *testing.T) {
	got, err := DecodeList[record]([]byte(`{"data":{"items":[{"id":"1","name":"a"}]}}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func Test_DecodeList_WrapSingleObject(t *testing.T) {
	got, err := DecodeList[record]([]byte(`{"id":"9","name":"solo"}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "solo", got[0].Name)
}

func Test_DecodeList_WrapSingleDataObject(t *testing.T) {
	got, err := DecodeList[record]([]byte(`{"data":{"id":"9","name":"solo"}}`))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "9", got[0].ID)
}

func Test_DecodeList_EmptyInputs(t *testing.T) {
	for _, raw := range [][]byte{nil, {}, []byte(`null`)} {
		got, err := DecodeList[record](raw)
		require.NoError(t, err)
		assert.Empty(t, got)
	}
}

func Test_DecodeList_EmptyArray(t *testing.T) {
	got, err := DecodeList[record]([]byte(`[]`))
	require.NoError(t, err)
	assert.Empty(t, got)
}

func Test_DecodeList_TypeMismatch(t *testing.T) {
	_, err := DecodeList[record]([]byte(`[{"id":123}]`))
	require.Error(t, err)
}

func Test_ExtractTotal(t *testing.T) {
	assert.Equal(t, 42, ExtractTotal([]byte(`{"total":42}`)))
	assert.Equal(t, 7, ExtractTotal([]byte(`{"totalCount":7}`)))
	assert.Equal(t, 3, ExtractTotal([]byte(`{"meta":{"total":3}}`)))
	assert.Equal(t, 42, ExtractTotal([]byte(`{"total":42,"totalCount":7}`)), "total wins")
	assert.Zero(t, ExtractTotal([]byte(`{"items":[]}`)))
	assert.Zero(t, ExtractTotal([]byte(`{"total":"42"}`)), "non-numeric total ignored")
}

func Test_DecodePage(t *testing.T) {
	page, err := DecodePage[record]([]byte(`{"items":[{"id":"1"},{"id":"2"}],"total":12}`))
	require.NoError(t, err)
	assert.Len(t, page.Items, 2)
	assert.Equal(t, 12, page.TotalCount)

	empty, err := DecodePage[record]([]byte(`{"items":[]}`))
	require.NoError(t, err)
	assert.Equal(t, models.Page[record]{Items: []record{}}, empty)
}
