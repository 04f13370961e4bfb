// rlpdemo is a CLI which RLP encodes a demonstration Ethereum transaction
// and prints the result as hex.
package main

import (
	"encoding/hex"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/akcotes/simple-rlp/pkg/crypto"
	"github.com/akcotes/simple-rlp/pkg/log"
	"github.com/akcotes/simple-rlp/pkg/rlp"
)

// encodeBufferSize mirrors the scratch buffer of the original demo, large
// enough for any fixture the demo accepts.
const encodeBufferSize = 2048

func main() {
	logger, err := log.NewDefaultProductionLogger()
	if err != nil {
		panic(err)
	}
	app := cli.App{
		Name:  "rlpdemo",
		Usage: "RLP encode a demonstration Ethereum transaction",
		Commands: []*cli.Command{
			{
				Name:  "encode",
				Usage: "Encode the built-in sample transaction or one loaded from a YAML fixture",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "tx",
						Aliases: []string{"t"},
						Usage:   "Path to a YAML transaction fixture",
					},
					&cli.BoolFlag{
						Name:  "hash",
						Usage: "Also print the Keccak-256 digest of the encoding",
					},
				},
				Action: func(c *cli.Context) error {
					tx := sampleTransaction()
					if path := c.String("tx"); path != "" {
						loaded, err := loadTransaction(path)
						if err != nil {
							return err
						}
						tx = loaded
					}
					elems, err := tx.elements()
					if err != nil {
						return err
					}
					dst := make([]byte, encodeBufferSize)
					n, err := rlp.EncodeList(dst, elems)
					if err != nil {
						return err
					}
					logger.Infof("RLP encoded transaction [%d B]", n)
					fmt.Println(hex.EncodeToString(dst[:n]))
					if c.Bool("hash") {
						fmt.Println(hex.EncodeToString(crypto.Keccak256(dst[:n])))
					}
					return nil
				},
			},
		},
	}
	if err := app.Run(os.Args); err != nil {
		logger.Errorf("Fail running application with %s", err)
		os.Exit(1)
	}
}
