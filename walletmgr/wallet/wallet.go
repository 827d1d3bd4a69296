package wallet

import (
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"math/big"

	"github.com/pkg/errors"
	"github.com/treeforest/basex/base58check"
	"github.com/treeforest/basex/pkg/gob"
	"golang.org/x/crypto/ripemd160"
)

// Wallet 钱包
type Wallet struct {
	Key ecdsa.PrivateKey // 私钥
	Pub []byte           // 公钥
}

// record 持久化格式，只保存私钥标量
type record struct {
	D []byte
}

func New() (*Wallet, error) {
	curve := elliptic.P256()
	key, err := ecdsa.GenerateKey(curve, rand.Reader)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	return fromKey(key), nil
}

func fromKey(key *ecdsa.PrivateKey) *Wallet {
	pub := elliptic.Marshal(key.Curve, key.PublicKey.X, key.PublicKey.Y)
	return &Wallet{Key: *key, Pub: pub}
}

// Address 钱包地址: base58check(version, RIPEMD160(SHA256(pub)))
func (w *Wallet) Address() string {
	return base58check.Encode(base58check.Version, w.PubKeyHash160())
}

func (w *Wallet) Sign(data []byte) ([]byte, error) {
	hash := sha256.Sum256(data)
	return ecdsa.SignASN1(rand.Reader, &w.Key, hash[:])
}

func (w *Wallet) Verify(data, sig []byte) bool {
	hash := sha256.Sum256(data)
	return ecdsa.VerifyASN1(&w.Key.PublicKey, hash[:], sig)
}

func (w *Wallet) PubKeyHash160() []byte {
	hash := sha256.Sum256(w.Pub)
	r := ripemd160.New()
	r.Write(hash[:])
	return r.Sum(nil)
}

func (w *Wallet) PubKey() []byte {
	pub := make([]byte, len(w.Pub))
	copy(pub, w.Pub)
	return pub
}

func (w *Wallet) Marshal() ([]byte, error) {
	return gob.Encode(record{D: w.Key.D.Bytes()})
}

func Unmarshal(data []byte) (*Wallet, error) {
	var r record
	if err := gob.Decode(data, &r); err != nil {
		return nil, err
	}
	if len(r.D) == 0 {
		return nil, errors.New("empty private key")
	}

	curve := elliptic.P256()
	key := new(ecdsa.PrivateKey)
	key.Curve = curve
	key.D = new(big.Int).SetBytes(r.D)
	key.PublicKey.X, key.PublicKey.Y = curve.ScalarBaseMult(r.D)
	return fromKey(key), nil
}
