// Package statestore is the contract's only path to the world state. It
// wraps the key-value slice of the chaincode stub and normalizes
// collaborator-level faults to ErrUnavailable. A missing key is never a
// fault: Get reports absence with a nil value.
package statestore

import (
	"errors"
	"fmt"

	"github.com/hyperledger/fabric-chaincode-go/shim"
)

// ErrUnavailable reports a fault in the ledger collaborator. Absent keys do
// not produce it.
var ErrUnavailable = errors.New("world state unavailable")

// State is the slice of shim.ChaincodeStubInterface the store needs.
type State interface {
	GetState(key string) ([]byte, error)
	PutState(key string, value []byte) error
	DelState(key string) error
	GetStateByRange(startKey, endKey string) (shim.StateQueryIteratorInterface, error)
}

// Store adapts a transaction's stub to the contract's read/write needs.
// Atomicity of the writes it issues is the enclosing transaction's concern.
type Store struct {
	state State
}

func New(state State) *Store {
	return &Store{state: state}
}

// Get returns the stored bytes for key, or nil when no entry exists.
func (s *Store) Get(key string) ([]byte, error) {
	b, err := s.state.GetState(key)
	if err != nil {
		return nil, fault("get", key, err)
	}
	return b, nil
}

// Put upserts key, overwriting any prior value within the transaction scope.
func (s *Store) Put(key string, value []byte) error {
	if err := s.state.PutState(key, value); err != nil {
		return fault("put", key, err)
	}
	return nil
}

// Delete removes key. Deleting an absent key is not an error here; callers
// that need must-exist semantics check existence first.
func (s *Store) Delete(key string) error {
	if err := s.state.DelState(key); err != nil {
		return fault("delete", key, err)
	}
	return nil
}

// Scan enumerates entries with keys in [startKey, endKey) in store key
// order. Empty bounds cover the whole namespace. The returned iterator must
// be drained or closed to release the peer's iteration state.
func (s *Store) Scan(startKey, endKey string) (*Iterator, error) {
	results, err := s.state.GetStateByRange(startKey, endKey)
	if err != nil {
		return nil, fault("scan", startKey, err)
	}
	return &Iterator{results: results}, nil
}

// KV is one entry produced by a range scan.
type KV struct {
	Key   string
	Value []byte
}

// Iterator walks a range scan. It is finite, forward-only and not
// restartable.
type Iterator struct {
	results shim.StateQueryIteratorInterface
}

// Next returns the next entry, or nil once the scan is exhausted.
func (it *Iterator) Next() (*KV, error) {
	if !it.results.HasNext() {
		return nil, nil
	}
	kv, err := it.results.Next()
	if err != nil {
		return nil, fault("scan next", "", err)
	}
	return &KV{Key: kv.Key, Value: kv.Value}, nil
}

// Close releases the underlying iteration state. Safe to call after the
// scan is exhausted.
func (it *Iterator) Close() error {
	return it.results.Close()
}

func fault(op, key string, err error) error {
	if key == "" {
		return fmt.Errorf("%s: %w", op, errors.Join(ErrUnavailable, err))
	}
	return fmt.Errorf("%s %s: %w", op, key, errors.Join(ErrUnavailable, err))
}
