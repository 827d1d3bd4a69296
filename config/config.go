package config

import (
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

const (
	CodecBase32 = "base32"
	CodecBase58 = "base58"
)

type Config struct {
	HttpServerPort int    `yaml:"http_server_port"` // web监听端口
	WalletDBPath   string `yaml:"wallet_db_path"`   // 钱包数据库路径
	Debug          bool   `yaml:"debug"`            // 输出调试日志
	DefaultCodec   string `yaml:"default_codec"`    // 命令行未指定 -codec 时使用
}

func DefaultConfig() *Config {
	return &Config{
		HttpServerPort: 8080,
		WalletDBPath:   ".",
		Debug:          false,
		DefaultCodec:   CodecBase58,
	}
}

func (c *Config) Unmarshal(b []byte) error {
	return yaml.Unmarshal(b, c)
}

func (c *Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) Validate() error {
	if c.HttpServerPort <= 0 || c.HttpServerPort > 65535 {
		return errors.Errorf("invalid http_server_port %d", c.HttpServerPort)
	}
	switch c.DefaultCodec {
	case CodecBase32, CodecBase58:
	default:
		return errors.Errorf("unknown default_codec %q", c.DefaultCodec)
	}
	return nil
}

// Load 读取 path 中的配置，未设置的字段使用默认值；文件不存在时返回默认配置
func Load(path string) (*Config, error) {
	conf := DefaultConfig()

	data, err := ioutil.ReadFile(path)
	if os.IsNotExist(err) {
		return conf, nil
	}
	if err != nil {
		return nil, errors.WithStack(err)
	}

	if err = conf.Unmarshal(data); err != nil {
		return nil, errors.WithStack(err)
	}
	if err = conf.Validate(); err != nil {
		return nil, err
	}

	return conf, nil
}
