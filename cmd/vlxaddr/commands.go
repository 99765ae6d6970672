package main

import (
	"encoding/json"
	"fmt"
	"strings"

	vlxaddr "github.com/CipherDogs/velas-address-go"
	"github.com/CipherDogs/velas-address-go/convert"
	"github.com/CipherDogs/velas-address-go/eth"
	"github.com/CipherDogs/velas-address-go/normalize"
	"github.com/CipherDogs/velas-address-go/vlx"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func CmdEthToVlx() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "eth-to-vlx <address>",
		Aliases: []string{"to-vlx"},
		Short:   "Convert a 0x-prefixed hex address to Velas base58check format.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := normalize.Eth(args[0])
			logrus.WithField("eth", address).Debug("normalized input")

			vlxAddress, err := convert.EthToVlx(address)
			if err != nil {
				return fmt.Errorf("could not convert address %s: %v", args[0], err)
			}

			fmt.Println(vlxAddress)
			return nil
		},
	}
	return cmd
}

func CmdVlxToEth() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vlx-to-eth <address>",
		Aliases: []string{"to-eth"},
		Short:   "Convert a Velas base58check address to 0x-prefixed hex format.",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := normalize.Vlx(args[0])

			eip55, _ := cmd.Flags().GetBool("eip55")
			raw, err := vlx.Decode(address)
			if err != nil {
				return fmt.Errorf("could not convert address %s: %v", args[0], err)
			}

			ethAddress := eth.Encode(raw)
			if eip55 {
				ethAddress = eth.EncodeEIP55(raw)
			}

			fmt.Println(ethAddress)
			return nil
		},
	}
	cmd.Flags().Bool("eip55", false, "Render the hex address with the EIP-55 mixed-case checksum.")
	return cmd
}

type inspection struct {
	Form     string             `json:"form"`
	Raw      hexutil.Bytes      `json:"raw"`
	Eth      vlxaddr.EthAddress `json:"eth"`
	Eip55    vlxaddr.EthAddress `json:"eip55"`
	Vlx      vlxaddr.VlxAddress `json:"vlx"`
	Version  byte               `json:"version"`
	Checksum hexutil.Bytes      `json:"checksum"`
}

func CmdInspect() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <address>",
		Short: "Decode an address in either format and show its raw parts.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := strings.TrimSpace(args[0])

			form := "vlx"
			if strings.HasPrefix(input, "0x") || strings.HasPrefix(input, "0X") {
				form = "eth"
			}
			logrus.WithField("form", form).Debug("detected address form")

			var raw common.Address
			var err error
			if form == "eth" {
				raw, err = eth.Decode(normalize.Eth(input))
			} else {
				raw, err = vlx.Decode(normalize.Vlx(input))
			}
			if err != nil {
				return fmt.Errorf("could not decode address %s: %v", args[0], err)
			}

			bz, _ := json.MarshalIndent(inspection{
				Form:     form,
				Raw:      raw.Bytes(),
				Eth:      eth.Encode(raw),
				Eip55:    eth.EncodeEIP55(raw),
				Vlx:      vlx.Encode(raw),
				Version:  vlxaddr.VersionByte,
				Checksum: vlx.Checksum(raw),
			}, "", "  ")
			fmt.Println(string(bz))
			return nil
		},
	}
	return cmd
}
