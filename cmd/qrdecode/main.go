package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"vietqr-system/domain/entities"
	"vietqr-system/domain/value_objects"
	"vietqr-system/errors"
	"vietqr-system/utils/emvqr"
	"vietqr-system/utils/vietqr"
)

type decodeFlags struct {
	json          bool
	verifyCRC     bool
	containerTags []string
}

type decodeOutput struct {
	Info      entities.PaymentInfo        `json:"info"`
	View      value_objects.DecodedQRView `json:"view"`
	CRCStatus entities.CRCStatus          `json:"crc_status,omitempty"`
}

func newRootCmd(in io.Reader, out io.Writer) *cobra.Command {
	flags := &decodeFlags{}

	cmd := &cobra.Command{
		Use:   "qrdecode [payload...]",
		Short: "Decode VietQR / EMVCo payloads",
		Long: `Decodes each payload given as an argument, or one payload per line
read from stdin when no argument is given.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			payloads := args
			if len(payloads) == 0 {
				var err error
				payloads, err = readPayloads(in)
				if err != nil {
					return err
				}
			}
			return runDecode(out, payloads, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.json, "json", false, "print one JSON object per payload")
	cmd.Flags().BoolVar(&flags.verifyCRC, "verify-crc", false, "check the tag 63 checksum")
	cmd.Flags().StringSliceVar(&flags.containerTags, "container-tags", nil, "tags decoded as nested templates (default 26,27,38,62)")
	return cmd
}

func readPayloads(in io.Reader) ([]string, error) {
	var payloads []string
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			payloads = append(payloads, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	if len(payloads) == 0 {
		return nil, errors.ErrNoQRFound
	}
	return payloads, nil
}

func runDecode(out io.Writer, payloads []string, flags *decodeFlags) error {
	var opts []vietqr.Option
	if len(flags.containerTags) > 0 {
		opts = append(opts, vietqr.WithContainerTags(flags.containerTags...))
	}
	decoder := vietqr.NewDecoder(opts...)
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	for i, payload := range payloads {
		payload = strings.TrimSpace(payload)
		if payload == "" {
			return errors.ErrEmptyPayload
		}

		info := decoder.Decode(payload)
		result := decodeOutput{Info: info, View: vietqr.Describe(info)}
		if flags.verifyCRC {
			result.CRCStatus = entities.NewCRCStatus(emvqr.VerifyCRC(payload))
		}

		if flags.json {
			if err := enc.Encode(result); err != nil {
				return err
			}
			continue
		}
		if i > 0 {
			fmt.Fprintln(out)
		}
		printView(out, result)
	}
	return nil
}

func printView(out io.Writer, result decodeOutput) {
	view := result.View
	rows := [][2]string{
		{"Ngân hàng", view.Bank},
		{"Số tài khoản", view.AccountNumber},
		{"Tên tài khoản", view.AccountName},
		{"Số tiền", view.Amount},
		{"Loại QR", view.QrType},
		{"Phương thức", view.Method},
		{"Quốc gia", view.Country},
		{"Thành phố", view.MerchantCity},
		{"CRC", view.CRC},
	}
	if result.CRCStatus != "" {
		rows = append(rows, [2]string{"Kiểm tra CRC", result.CRCStatus.StatusString()})
	}
	for _, row := range rows {
		fmt.Fprintf(out, "%s: %s\n", row[0], row[1])
	}
}

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}
