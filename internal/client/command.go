package client

import (
	"encoding/hex"
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"github.com/pkg/errors"
	"github.com/treeforest/basex/config"
	"github.com/treeforest/basex/internal/coder"
	"github.com/treeforest/basex/pkg/idgen"
	"github.com/treeforest/basex/pkg/utils"
	"github.com/treeforest/basex/walletmgr"
	log "github.com/treeforest/logger"
)

var ErrUsage = errors.New("usage")

type Command struct {
	conf *config.Config
	out  io.Writer
}

func New(conf *config.Config, out io.Writer) *Command {
	return &Command{conf: conf, out: out}
}

func (c *Command) printUsage() {
	fmt.Fprintln(c.out, "Usage:")
	// 编解码
	fmt.Fprintf(c.out, "\tencode -codec CODEC [-in TEXT | -hex HEX] -- 编码\n")
	fmt.Fprintf(c.out, "\t\t-codec -- %s，默认 %s\n", strings.Join(coder.Names(), "|"), c.conf.DefaultCodec)
	fmt.Fprintf(c.out, "\tdecode -codec CODEC -in ENCODED [-text] -- 解码，默认以十六进制输出\n")
	// 标识
	fmt.Fprintf(c.out, "\tid -- 生成随机ID\n")
	fmt.Fprintf(c.out, "\ttoken -n N -- 生成N字节的随机令牌\n")
	// 钱包
	fmt.Fprintf(c.out, "\tcreatewallet -- 创建钱包\n")
	fmt.Fprintf(c.out, "\tremovewallet -address ADDRESS -- 删除钱包\n")
	fmt.Fprintf(c.out, "\taddresses -- 获取钱包地址列表\n")
	fmt.Fprintf(c.out, "\tvalidate -address ADDRESS -- 校验地址\n")
}

// Run 执行 args[0] 指定的子命令，参数不合法时打印帮助并返回 ErrUsage
func (c *Command) Run(args []string) error {
	// 编解码
	cmdEncode := flag.NewFlagSet("encode", flag.ContinueOnError)
	encodeCodec := cmdEncode.String("codec", c.conf.DefaultCodec, "编码方式")
	encodeIn := cmdEncode.String("in", "", "待编码的文本")
	encodeHex := cmdEncode.String("hex", "", "待编码的十六进制数据")
	cmdDecode := flag.NewFlagSet("decode", flag.ContinueOnError)
	decodeCodec := cmdDecode.String("codec", c.conf.DefaultCodec, "编码方式")
	decodeIn := cmdDecode.String("in", "", "待解码的字符串")
	decodeText := cmdDecode.Bool("text", false, "以文本输出")
	// 标识
	cmdID := flag.NewFlagSet("id", flag.ContinueOnError)
	cmdToken := flag.NewFlagSet("token", flag.ContinueOnError)
	tokenLen := cmdToken.Int("n", 20, "随机字节数")
	// 钱包
	cmdCreateWallet := flag.NewFlagSet("createwallet", flag.ContinueOnError)
	cmdRemoveWallet := flag.NewFlagSet("removewallet", flag.ContinueOnError)
	argRemoveWalletAddress := cmdRemoveWallet.String("address", "", "钱包地址")
	cmdAddresses := flag.NewFlagSet("addresses", flag.ContinueOnError)
	cmdValidate := flag.NewFlagSet("validate", flag.ContinueOnError)
	argValidateAddress := cmdValidate.String("address", "", "钱包地址")

	if len(args) < 1 {
		c.printUsage()
		return ErrUsage
	}

	switch args[0] {
	case "encode":
		if !c.parseCommand(cmdEncode, args) {
			goto HELP
		}
		return c.encode(*encodeCodec, *encodeIn, *encodeHex)
	case "decode":
		if !c.parseCommand(cmdDecode, args) {
			goto HELP
		}
		return c.decode(*decodeCodec, *decodeIn, *decodeText)
	case "id":
		if !c.parseCommand(cmdID, args) {
			goto HELP
		}
		fmt.Fprintln(c.out, idgen.NewID())
		return nil
	case "token":
		if !c.parseCommand(cmdToken, args) || *tokenLen <= 0 {
			goto HELP
		}
		return c.token(*tokenLen)
	case "createwallet":
		if !c.parseCommand(cmdCreateWallet, args) {
			goto HELP
		}
		return c.createWallet()
	case "removewallet":
		if !c.parseCommand(cmdRemoveWallet, args) || *argRemoveWalletAddress == "" {
			goto HELP
		}
		return c.removeWallet(*argRemoveWalletAddress)
	case "addresses":
		if !c.parseCommand(cmdAddresses, args) {
			goto HELP
		}
		return c.printAddresses()
	case "validate":
		if !c.parseCommand(cmdValidate, args) || *argValidateAddress == "" {
			goto HELP
		}
		c.validate(*argValidateAddress)
		return nil
	default:
		goto HELP
	}
HELP:
	c.printUsage()
	return ErrUsage
}

func (c *Command) parseCommand(f *flag.FlagSet, args []string) bool {
	f.SetOutput(ioutil.Discard)
	if err := f.Parse(args[1:]); err != nil {
		log.Warn("parse command failed: ", err)
		return false
	}
	return f.Parsed()
}

func (c *Command) encode(name, in, hexIn string) error {
	cd, ok := coder.Get(name)
	if !ok {
		return errors.Errorf("unknown codec %q", name)
	}

	src := []byte(in)
	if hexIn != "" {
		b, err := hex.DecodeString(hexIn)
		if err != nil {
			return errors.Wrap(err, "hex")
		}
		src = b
	}

	fmt.Fprintln(c.out, cd.Encode(src))
	return nil
}

func (c *Command) decode(name, in string, text bool) error {
	cd, ok := coder.Get(name)
	if !ok {
		return errors.Errorf("unknown codec %q", name)
	}

	if text {
		s, err := cd.DecodeToString(in)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out, s)
		return nil
	}

	b, err := cd.Decode(in)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, hex.EncodeToString(b))
	return nil
}

func (c *Command) token(n int) error {
	tok, err := idgen.NewToken(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, tok)
	return nil
}

func (c *Command) openWallets() (*walletmgr.WalletManager, error) {
	return walletmgr.Open(c.conf.WalletDBPath)
}

func (c *Command) createWallet() error {
	mgr, err := c.openWallets()
	if err != nil {
		return err
	}
	defer mgr.Close()

	w, err := mgr.CreateWallet()
	if err != nil {
		return errors.Wrap(err, "create wallet failed")
	}
	fmt.Fprintln(c.out, w.Address())
	return nil
}

func (c *Command) removeWallet(address string) error {
	mgr, err := c.openWallets()
	if err != nil {
		return err
	}
	defer mgr.Close()

	if err = mgr.RemoveWallet(address); err != nil {
		return err
	}
	log.Info("remove wallet success")
	return nil
}

func (c *Command) printAddresses() error {
	mgr, err := c.openWallets()
	if err != nil {
		return err
	}
	defer mgr.Close()

	fmt.Fprintln(c.out, "地址列表：")
	for _, address := range mgr.Addresses() {
		fmt.Fprintf(c.out, "\t%s\n", address)
	}
	return nil
}

func (c *Command) validate(address string) {
	fmt.Fprintln(c.out, utils.IsValidAddress(address))
}
