package registry

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hyperledger/fabric-contract-api-go/contractapi"
)

// operation describes one externally invocable transaction.
type operation struct {
	name     string
	readOnly bool
}

// operations is the contract's complete invocable surface. readOnly entries
// are evaluate transactions: a single peer answers them and they are never
// submitted for ordering.
var operations = []operation{
	{name: "InitLedger", readOnly: false},
	{name: "CreateAsset", readOnly: false},
	{name: "ReadAsset", readOnly: true},
	{name: "UpdateAsset", readOnly: false},
	{name: "DeleteAsset", readOnly: false},
	{name: "AssetExists", readOnly: true},
	{name: "TransferAsset", readOnly: false},
	{name: "GetAllAssets", readOnly: true},
}

// GetEvaluateTransactions reports the read-only operations, derived from
// the operations table.
func (c *AssetContract) GetEvaluateTransactions() []string {
	var names []string
	for _, op := range operations {
		if op.readOnly {
			names = append(names, op.name)
		}
	}
	return names
}

// unknownTransaction rejects any function name outside the operations
// table. Wired as the contract's UnknownTransaction handler.
func (c *AssetContract) unknownTransaction(ctx contractapi.TransactionContextInterface) error {
	fn, _ := ctx.GetStub().GetFunctionAndParameters()

	known := make([]string, 0, len(operations))
	for _, op := range operations {
		known = append(known, op.name)
	}
	sort.Strings(known)
	return fmt.Errorf("unknown transaction %q, expected one of: %s", fn, strings.Join(known, ", "))
}
