package walletmgr

import (
	"path/filepath"
	"sync"

	"github.com/bits-and-blooms/bloom/v3"
	"github.com/pkg/errors"
	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/util"
	"github.com/treeforest/basex/base58check"
	"github.com/treeforest/basex/walletmgr/wallet"
	log "github.com/treeforest/logger"
)

const (
	dbName       = "WALLET"     // 数据库名
	walletPrefix = "__wallet__" // address => wallet

	filterCapacity = 10000 // Bloom 过滤器预估容量
	filterFpRate   = 0.001
)

var (
	ErrNotFound       = errors.New("address not exist")
	ErrInvalidAddress = errors.New("invalid address")
)

// WalletManager 钱包管理器
type WalletManager struct {
	db     *leveldb.DB
	mu     sync.RWMutex
	filter *bloom.BloomFilter // 钱包地址的 Bloom 过滤器
}

// Open 打开(或创建) path 下的钱包数据库
func Open(path string) (*WalletManager, error) {
	log.Debug("wallet db path:", filepath.Join(path, dbName))
	db, err := leveldb.OpenFile(filepath.Join(path, dbName), &opt.Options{})
	if err != nil {
		return nil, errors.Wrapf(err, "open leveldb [%s]", dbName)
	}

	m := &WalletManager{
		db:     db,
		filter: bloom.NewWithEstimates(filterCapacity, filterFpRate),
	}
	if err = m.loadFilter(); err != nil {
		_ = db.Close()
		return nil, err
	}
	return m, nil
}

func (m *WalletManager) loadFilter() error {
	n := 0
	err := m.traverse(func(address string, _ []byte) error {
		m.filter.AddString(address)
		n++
		return nil
	})
	log.Debugf("load %d wallets", n)
	return err
}

func (m *WalletManager) Close() error {
	return m.db.Close()
}

func (m *WalletManager) CreateWallet() (*wallet.Wallet, error) {
	w, err := wallet.New()
	if err != nil {
		return nil, err
	}
	data, err := w.Marshal()
	if err != nil {
		return nil, err
	}

	address := w.Address()
	m.mu.Lock()
	defer m.mu.Unlock()
	if err = m.db.Put(key(address), data, &opt.WriteOptions{Sync: true}); err != nil {
		return nil, errors.Wrap(err, "insert wallet failed")
	}
	m.filter.AddString(address)
	log.Infof("create wallet %s", address)
	return w, nil
}

func (m *WalletManager) RemoveWallet(address string) error {
	if !m.Has(address) {
		return ErrNotFound
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	// Bloom 过滤器不支持删除，Has 会回退到数据库查询
	return errors.Wrap(m.db.Delete(key(address), &opt.WriteOptions{Sync: true}), "delete wallet failed")
}

func (m *WalletManager) GetWallet(address string) (*wallet.Wallet, error) {
	if _, _, err := base58check.Decode(address); err != nil {
		return nil, errors.Wrap(ErrInvalidAddress, err.Error())
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, err := m.db.Get(key(address), nil)
	if err == leveldb.ErrNotFound {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return wallet.Unmarshal(data)
}

// Has 先查 Bloom 过滤器，可能存在时再查数据库
func (m *WalletManager) Has(address string) bool {
	if _, _, err := base58check.Decode(address); err != nil {
		return false
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.filter.TestString(address) {
		return false
	}
	ok, err := m.db.Has(key(address), nil)
	if err != nil {
		log.Warnf("query wallet %s failed: %v", address, err)
		return false
	}
	return ok
}

// Addresses 按地址排序返回全部钱包地址
func (m *WalletManager) Addresses() []string {
	addresses := make([]string, 0)
	err := m.traverse(func(address string, _ []byte) error {
		addresses = append(addresses, address)
		return nil
	})
	if err != nil {
		log.Warnf("traverse wallets failed: %v", err)
	}
	return addresses
}

func (m *WalletManager) traverse(fn func(address string, data []byte) error) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	iter := m.db.NewIterator(util.BytesPrefix([]byte(walletPrefix)), nil)
	defer iter.Release()
	for iter.Next() {
		address := string(iter.Key()[len(walletPrefix):])
		if err := fn(address, iter.Value()); err != nil {
			return err
		}
	}
	return errors.WithStack(iter.Error())
}

func key(address string) []byte {
	return []byte(walletPrefix + address)
}
