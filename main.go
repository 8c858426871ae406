package main

import (
	"log"
	"os"
	"strconv"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"go.uber.org/zap"

	"example.com/chaincode/assetregistry/registry"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Panicf("Error creating logger: %v", err)
	}
	defer logger.Sync()

	chaincode, err := contractapi.NewChaincode(registry.NewAssetContract(logger))
	if err != nil {
		logger.Fatal("create chaincode", zap.Error(err))
	}

	chaincode.Info.Title = "asset-registry"
	chaincode.Info.Version = "1.0"

	// Chaincode-as-a-service when the peer dials us; peer-managed lifecycle
	// otherwise.
	if address := os.Getenv("CHAINCODE_SERVER_ADDRESS"); address != "" {
		server := &shim.ChaincodeServer{
			CCID:    os.Getenv("CHAINCODE_ID"),
			Address: address,
			CC:      chaincode,
			TLSProps: shim.TLSProperties{
				Disabled: tlsDisabled(),
			},
		}
		logger.Info("starting chaincode server", zap.String("address", address))
		if err := server.Start(); err != nil {
			logger.Fatal("chaincode server", zap.Error(err))
		}
		return
	}

	if err := chaincode.Start(); err != nil {
		logger.Fatal("start chaincode", zap.Error(err))
	}
}

func tlsDisabled() bool {
	v := os.Getenv("CORE_CHAINCODE_TLS_DISABLED")
	if v == "" {
		return true
	}
	disabled, err := strconv.ParseBool(v)
	if err != nil {
		return true
	}
	return disabled
}
