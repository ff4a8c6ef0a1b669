package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *BankStore {
	t.Helper()
	s, err := NewBankStore(filepath.Join(t.TempDir(), "cookie_bank.json"))
	require.NoError(t, err)
	return s
}

func TestUnknownUserHasNoAccountAndZeroBalance(t *testing.T) {
	s := newTestStore(t)

	assert.False(t, s.HasAccount("123"))
	assert.EqualValues(t, 0, s.GetBalance("123"))
}

func TestSetBalanceClampsNegativeToZero(t *testing.T) {
	s := newTestStore(t)

	balance, err := s.SetBalance("123", -50)
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
	assert.EqualValues(t, 0, s.GetBalance("123"))

	balance, err = s.SetBalance("123", 42)
	require.NoError(t, err)
	assert.EqualValues(t, 42, balance)
	assert.EqualValues(t, 42, s.GetBalance("123"))
}

func TestOpenAccountCreatesEmptyAccount(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.OpenAccount("123"))
	assert.True(t, s.HasAccount("123"))
	assert.EqualValues(t, 0, s.GetBalance("123"))
}

func TestPersistedStoreRoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie_bank.json")

	s, err := NewBankStore(path)
	require.NoError(t, err)
	_, err = s.SetBalance("alice", 100)
	require.NoError(t, err)
	_, err = s.SetBalance("bob", 7)
	require.NoError(t, err)

	reloaded, err := NewBankStore(path)
	require.NoError(t, err)
	assert.Equal(t, s.Balances(), reloaded.Balances())
}

func TestMissingFileStartsEmpty(t *testing.T) {
	s, err := NewBankStore(filepath.Join(t.TempDir(), "does_not_exist.json"))
	require.NoError(t, err)
	assert.Empty(t, s.Balances())
}

func TestCorruptedFileRefusesToLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie_bank.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := NewBankStore(path)
	assert.Error(t, err)
}

func TestMutateClampsAtZero(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetBalance("123", 10)
	require.NoError(t, err)

	// 残高を超える減算は0で止まり、負にはならない
	balance, err := s.Mutate("123", func(b int64) int64 { return b - 25 })
	require.NoError(t, err)
	assert.EqualValues(t, 0, balance)
	assert.EqualValues(t, 0, s.GetBalance("123"))
}

func TestTransferConservesTotal(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetBalance("alice", 30)
	require.NoError(t, err)
	_, err = s.SetBalance("bob", 5)
	require.NoError(t, err)

	balance, err := s.Transfer("alice", "bob", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 20, balance)
	assert.EqualValues(t, 20, s.GetBalance("alice"))
	assert.EqualValues(t, 15, s.GetBalance("bob"))
	assert.EqualValues(t, 35, s.GetBalance("alice")+s.GetBalance("bob"))
}

func TestTransferRejectsMissingAccount(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetBalance("alice", 30)
	require.NoError(t, err)

	_, err = s.Transfer("alice", "ghost", 10)
	assert.ErrorIs(t, err, ErrNoAccount)
	assert.EqualValues(t, 30, s.GetBalance("alice"))
}

func TestTransferRejectsInsufficientBalance(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetBalance("alice", 5)
	require.NoError(t, err)
	require.NoError(t, s.OpenAccount("bob"))

	_, err = s.Transfer("alice", "bob", 10)
	assert.Error(t, err)
	assert.EqualValues(t, 5, s.GetBalance("alice"))
	assert.EqualValues(t, 0, s.GetBalance("bob"))
}

func TestTransferToSelfLeavesBalanceUnchanged(t *testing.T) {
	s := newTestStore(t)
	_, err := s.SetBalance("alice", 30)
	require.NoError(t, err)

	balance, err := s.Transfer("alice", "alice", 10)
	require.NoError(t, err)
	assert.EqualValues(t, 30, balance)
	assert.EqualValues(t, 30, s.GetBalance("alice"))
}

func TestTransferRejectsNonPositiveAmount(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.OpenAccount("alice"))
	require.NoError(t, s.OpenAccount("bob"))

	_, err := s.Transfer("alice", "bob", 0)
	assert.Error(t, err)
	_, err = s.Transfer("alice", "bob", -3)
	assert.Error(t, err)
}

// 口座開設→召喚→消費→口座の無い相手への送付、という一連の流れ
func TestAccountLifecycleScenario(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.OpenAccount("U"))
	assert.True(t, s.HasAccount("U"))
	assert.EqualValues(t, 0, s.GetBalance("U"))

	// summoncookie 50
	balance, err := s.Mutate("U", func(b int64) int64 { return b + 50 })
	require.NoError(t, err)
	assert.EqualValues(t, 50, balance)

	// eatcookie 20
	balance, err = s.Mutate("U", func(b int64) int64 { return b - 20 })
	require.NoError(t, err)
	assert.EqualValues(t, 30, balance)

	// givecookie to V (口座なし) → 拒否され残高は変わらない
	_, err = s.Transfer("U", "V", 10)
	assert.ErrorIs(t, err, ErrNoAccount)
	assert.EqualValues(t, 30, s.GetBalance("U"))
	assert.False(t, s.HasAccount("V"))
}

func TestBackupWritesCopy(t *testing.T) {
	dir := t.TempDir()
	s, err := NewBankStore(filepath.Join(dir, "cookie_bank.json"))
	require.NoError(t, err)
	_, err = s.SetBalance("alice", 10)
	require.NoError(t, err)

	backupDir := filepath.Join(dir, "backups")
	require.NoError(t, s.Backup(backupDir))

	entries, err := os.ReadDir(backupDir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}
