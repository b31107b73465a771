package contract

import (
	"testing"

	"github.com/holiman/uint256"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/seriesmint/internal/badger"
	"github.com/mesh-intelligence/seriesmint/internal/sqlite"
	"github.com/mesh-intelligence/seriesmint/pkg/types"
)

const admin = types.AccountID("admin")

// recordSink captures emitted events for assertions.
type recordSink struct {
	events []Event
}

func (r *recordSink) Emit(e Event) { r.events = append(r.events, e) }

func (r *recordSink) names() []string {
	out := make([]string, len(r.events))
	for i, e := range r.events {
		out[i] = e.Event
	}
	return out
}

func testMetadata() types.ContractMetadata {
	return types.ContractMetadata{Spec: "nft-1.0.0", Name: "DevHub Badges", Symbol: "DEVHUB"}
}

// newTestStore attaches a fresh SQLite store in a temp dir.
func newTestStore(t *testing.T) types.Store {
	t.Helper()
	store := sqlite.NewBackend()
	err := store.Attach(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Detach() })
	return store
}

// newTestBadgerStore attaches a fresh Badger store in a temp dir.
func newTestBadgerStore(t *testing.T) types.Store {
	t.Helper()
	store := badger.NewBackend()
	err := store.Attach(types.Config{Backend: types.BackendBadger, DataDir: t.TempDir()})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Detach() })
	return store
}

// newTestContract builds an initialized contract with a unit storage
// price so deposit math stays readable.
func newTestContract(t *testing.T, opts ...Option) *Contract {
	t.Helper()
	opts = append([]Option{WithCostPerByte(uint256.NewInt(1))}, opts...)
	c := New(newTestStore(t), opts...)
	require.NoError(t, c.Init(Call{Caller: admin}, testMetadata()))
	return c
}

// funded returns a call with a deposit large enough for any test write.
func funded(caller types.AccountID) Call {
	return Call{Caller: caller, Deposit: uint256.NewInt(1 << 20)}
}

func TestInitOnce(t *testing.T) {
	c := New(newTestStore(t))

	require.NoError(t, c.Init(Call{Caller: admin}, testMetadata()))

	err := c.Init(Call{Caller: admin}, testMetadata())
	assert.ErrorIs(t, err, types.ErrAlreadyInitialized)
}

func TestInitValidatesArguments(t *testing.T) {
	c := New(newTestStore(t))

	err := c.Init(Call{Caller: "Bad Caller"}, testMetadata())
	assert.ErrorIs(t, err, types.ErrInvalidAccountID)

	err = c.Init(Call{Caller: admin}, types.ContractMetadata{Name: "no spec"})
	assert.ErrorIs(t, err, types.ErrInvalidMetadata)
}

func TestMutationsRequireInit(t *testing.T) {
	c := New(newTestStore(t), WithCostPerByte(uint256.NewInt(1)))

	_, err := c.CreateSeries(funded("alice"), 1, types.TokenMetadata{Title: "Badge"}, false)
	assert.ErrorIs(t, err, types.ErrNotInitialized)

	_, err = c.SetAllowedAddresses(funded(admin), nil)
	assert.ErrorIs(t, err, types.ErrNotInitialized)
}

func TestContractMetadata(t *testing.T) {
	c := newTestContract(t)

	md, err := c.Metadata()
	require.NoError(t, err)
	assert.Equal(t, testMetadata(), md)

	updated := types.ContractMetadata{Spec: "nft-1.0.0", Name: "New Name", Symbol: "NEW"}

	err = c.UpdateContractMetadata(Call{Caller: "mallory"}, updated)
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	require.NoError(t, c.UpdateContractMetadata(Call{Caller: admin}, updated))
	md, err = c.Metadata()
	require.NoError(t, err)
	assert.Equal(t, updated, md)
}

func TestReceiptsJournal(t *testing.T) {
	c := newTestContract(t)

	_, err := c.CreateSeries(funded("alice"), 1, types.TokenMetadata{Title: "Badge"}, false)
	require.NoError(t, err)
	_, _, err = c.NFTMint(funded("alice"), 1, "bob")
	require.NoError(t, err)

	rs, err := c.Receipts(0)
	require.NoError(t, err)
	require.Len(t, rs, 3) // init, create_series, nft_mint
	assert.Equal(t, "nft_mint", rs[0].Op)
	assert.Equal(t, "1:1", rs[0].Subject)
	assert.Equal(t, "create_series", rs[1].Op)
	assert.Equal(t, "init", rs[2].Op)
}

func TestFailedCallsLeaveNoReceipt(t *testing.T) {
	c := newTestContract(t)

	_, err := c.CreateSeries(funded("alice"), 0, types.TokenMetadata{Title: "Badge"}, false)
	assert.ErrorIs(t, err, types.ErrInvalidSeriesID)
	_, _, err = c.NFTMint(funded("alice"), 99, "bob")
	assert.ErrorIs(t, err, types.ErrNotFound)

	rs, err := c.Receipts(0)
	require.NoError(t, err)
	assert.Len(t, rs, 1) // init only
}

func TestEventsEmittedOnlyOnCommit(t *testing.T) {
	sink := &recordSink{}
	c := newTestContract(t, WithEventSink(sink))
	sink.events = nil // drop the init event

	_, err := c.CreateSeries(funded("alice"), 1, types.TokenMetadata{Title: "Badge"}, false)
	require.NoError(t, err)
	_, _, err = c.NFTMint(funded("alice"), 1, "bob")
	require.NoError(t, err)
	require.NoError(t, c.NFTTransfer(funded("bob"), "1:1", "carol"))

	// A failing call must not emit.
	_, _, err = c.NFTMint(funded("mallory"), 1, "mallory")
	assert.ErrorIs(t, err, types.ErrUnauthorized)

	assert.Equal(t, []string{EventCreateSeries, EventNFTMint, EventNFTTransfer}, sink.names())

	mint := sink.events[1]
	assert.Equal(t, EventStandard, mint.Standard)
	assert.Equal(t, EventVersion, mint.Version)
	assert.Equal(t, MintData{OwnerID: "bob", TokenIDs: []string{"1:1"}}, mint.Data)

	transfer := sink.events[2]
	assert.Equal(t, TransferData{
		OldOwnerID: "bob",
		NewOwnerID: "carol",
		TokenIDs:   []string{"1:1"},
	}, transfer.Data)
}
