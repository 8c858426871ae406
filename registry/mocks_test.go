package registry

import (
	"sort"

	"github.com/hyperledger/fabric-chaincode-go/shim"
	"github.com/hyperledger/fabric-contract-api-go/contractapi"
	"github.com/hyperledger/fabric-protos-go/ledger/queryresult"
)

// fakeStub backs the contract with an in-memory world state. The embedded
// interface satisfies the methods the contract never touches; only the
// key-value surface is implemented.
type fakeStub struct {
	shim.ChaincodeStubInterface
	state map[string][]byte
	err   error
	fn    string

	iters []*fakeIterator
}

func newFakeStub() *fakeStub {
	return &fakeStub{state: map[string][]byte{}}
}

func (s *fakeStub) GetState(key string) ([]byte, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.state[key], nil
}

func (s *fakeStub) PutState(key string, value []byte) error {
	if s.err != nil {
		return s.err
	}
	s.state[key] = value
	return nil
}

func (s *fakeStub) DelState(key string) error {
	if s.err != nil {
		return s.err
	}
	delete(s.state, key)
	return nil
}

func (s *fakeStub) GetFunctionAndParameters() (string, []string) {
	return s.fn, nil
}

func (s *fakeStub) GetStateByRange(startKey, endKey string) (shim.StateQueryIteratorInterface, error) {
	if s.err != nil {
		return nil, s.err
	}

	var keys []string
	for k := range s.state {
		if k < startKey {
			continue
		}
		if endKey != "" && k >= endKey {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	it := &fakeIterator{}
	for _, k := range keys {
		it.kvs = append(it.kvs, &queryresult.KV{Key: k, Value: s.state[k]})
	}
	s.iters = append(s.iters, it)
	return it, nil
}

type fakeIterator struct {
	kvs    []*queryresult.KV
	pos    int
	closed bool
}

func (it *fakeIterator) HasNext() bool {
	return it.pos < len(it.kvs)
}

func (it *fakeIterator) Next() (*queryresult.KV, error) {
	kv := it.kvs[it.pos]
	it.pos++
	return kv, nil
}

func (it *fakeIterator) Close() error {
	it.closed = true
	return nil
}

// fakeCtx hands the fake stub to contract methods.
type fakeCtx struct {
	contractapi.TransactionContextInterface
	stub *fakeStub
}

func (c *fakeCtx) GetStub() shim.ChaincodeStubInterface {
	return c.stub
}

func newFakeCtx() (*fakeCtx, *fakeStub) {
	stub := newFakeStub()
	return &fakeCtx{stub: stub}, stub
}
