package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"cookiebank/interfaces"
)

// ErrNoAccount は、口座が存在しないユーザーへの操作で返されます。
var ErrNoAccount = errors.New("account does not exist")

// BankStore はクッキー残高をJSONファイルに永続化するストアです。
// メモリ上のマップが唯一のキャッシュであり、すべての変更はロック下で
// 行われた後にファイル全体を書き直します。
type BankStore struct {
	path     string
	mu       sync.RWMutex
	balances map[string]int64
}

// NewBankStore はファイルから残高を読み込み、ストアを作成します。
// ファイルが存在しない場合は空のストアで開始します。ファイルが壊れている
// 場合はエラーを返し、起動を中止させます。
func NewBankStore(path string) (*BankStore, error) {
	s := &BankStore{
		path:     path,
		balances: make(map[string]int64),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// 初回起動
			return s, nil
		}
		return nil, fmt.Errorf("failed to read bank file %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &s.balances); err != nil {
		return nil, fmt.Errorf("bank file %s is corrupted: %w", path, err)
	}
	if s.balances == nil {
		s.balances = make(map[string]int64)
	}
	return s, nil
}

// HasAccount は口座の有無を返します。マップにキーがあること＝口座があることです。
func (s *BankStore) HasAccount(userID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.balances[userID]
	return ok
}

// GetBalance は残高を返します。口座が無い場合はエラーにせず 0 を返すため、
// 「口座必須」の操作では先に HasAccount で確認すること。
func (s *BankStore) GetBalance(userID string) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.balances[userID]
}

// OpenAccount は残高0の口座を作成して永続化します。
func (s *BankStore) OpenAccount(userID string) error {
	_, err := s.SetBalance(userID, 0)
	return err
}

// SetBalance は残高を amount に設定して永続化します。負の値は 0 に切り上げます。
// 永続化に失敗した場合、メモリ上の変更は巻き戻され、エラーが返ります。
func (s *BankStore) SetBalance(userID string, amount int64) (int64, error) {
	return s.mutateLocked(userID, func(int64) int64 { return amount })
}

// Mutate は現在の残高に f を適用した値を書き込みます。読み取りと書き込みを
// 1つのロック区間で行うため、同一口座への並行操作で更新が失われることはありません。
func (s *BankStore) Mutate(userID string, f func(int64) int64) (int64, error) {
	return s.mutateLocked(userID, f)
}

func (s *BankStore) mutateLocked(userID string, f func(int64) int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prev, existed := s.balances[userID]
	next := f(prev)
	if next < 0 {
		next = 0
	}
	s.balances[userID] = next

	if err := s.persist(); err != nil {
		// ディスクと食い違ったまま進まないように巻き戻す
		if existed {
			s.balances[userID] = prev
		} else {
			delete(s.balances, userID)
		}
		return prev, err
	}
	return next, nil
}

// Transfer は from から to へ amount を移動します。両口座の更新と永続化を
// 1つのロック区間で行い、失敗時は両方を巻き戻します。戻り値は from の新残高です。
func (s *BankStore) Transfer(fromID, toID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	fromPrev, fromOK := s.balances[fromID]
	toPrev, toOK := s.balances[toID]
	if !fromOK || !toOK {
		return fromPrev, ErrNoAccount
	}
	if amount <= 0 {
		return fromPrev, fmt.Errorf("transfer amount must be positive, got %d", amount)
	}
	if fromPrev < amount {
		return fromPrev, fmt.Errorf("insufficient balance: have %d, need %d", fromPrev, amount)
	}
	if fromID == toID {
		// 自分宛ては差し引きゼロ
		return fromPrev, nil
	}

	s.balances[fromID] = fromPrev - amount
	s.balances[toID] = toPrev + amount

	if err := s.persist(); err != nil {
		s.balances[fromID] = fromPrev
		s.balances[toID] = toPrev
		return fromPrev, err
	}
	return fromPrev - amount, nil
}

// Balances は全残高のスナップショットコピーを返します。
func (s *BankStore) Balances() map[string]int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]int64, len(s.balances))
	for id, v := range s.balances {
		out[id] = v
	}
	return out
}

// persist はマップ全体をJSONとしてファイルに書き出します。呼び出し側がロックを保持していること。
func (s *BankStore) persist() error {
	data, err := json.MarshalIndent(s.balances, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}

// Backup は銀行ファイルのタイムスタンプ付きコピーを dir に書き出します。
func (s *BankStore) Backup(dir string) error {
	s.mu.RLock()
	data, err := json.MarshalIndent(s.balances, "", "  ")
	s.mu.RUnlock()
	if err != nil {
		return err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := fmt.Sprintf("cookie_bank-%s.json", time.Now().Format("20060102-150405"))
	return os.WriteFile(filepath.Join(dir, name), data, 0o644)
}

var _ interfaces.BankStore = (*BankStore)(nil)
