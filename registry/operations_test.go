package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOperationsTableCoversContractSurface(t *testing.T) {
	want := []string{
		"InitLedger",
		"CreateAsset",
		"ReadAsset",
		"UpdateAsset",
		"DeleteAsset",
		"AssetExists",
		"TransferAsset",
		"GetAllAssets",
	}

	var got []string
	for _, op := range operations {
		got = append(got, op.name)
	}
	assert.ElementsMatch(t, want, got)
}

func TestGetEvaluateTransactionsDerivesFromTable(t *testing.T) {
	c := newContract()
	assert.ElementsMatch(t,
		[]string{"ReadAsset", "AssetExists", "GetAllAssets"},
		c.GetEvaluateTransactions())
}

func TestUnknownTransactionNamesTheFunction(t *testing.T) {
	ctx, stub := newFakeCtx()
	stub.fn = "MintAsset"

	c := newContract()
	err := c.unknownTransaction(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"MintAsset"`)
	assert.Contains(t, err.Error(), "CreateAsset")
}
