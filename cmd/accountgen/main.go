// Command accountgen prints a batch of generated username/password pairs and
// can copy them to the clipboard or save them as accounts.csv.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/vaultpass/accountgen/internal/crypto"
	"github.com/vaultpass/accountgen/internal/export"
	"github.com/vaultpass/accountgen/internal/model"
	"github.com/vaultpass/accountgen/internal/presenter"
	"github.com/vaultpass/accountgen/internal/service"
)

var version = "dev" // set by the linker

// deps are the host services the command talks to.
type deps struct {
	clipboard export.Clipboard
	fs        afero.Fs
}

func main() {
	cmd := newRootCmd(deps{clipboard: export.SystemClipboard{}, fs: afero.NewOsFs()})
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(d deps) *cobra.Command {
	var (
		length    int
		quantity  int
		numbers   bool
		symbols   bool
		uppercase bool
		secure    bool
		copyAll   bool
		saveCSV   bool
		outDir    string
	)

	cmd := &cobra.Command{
		Use:          "accountgen",
		Short:        "Generate random username/password pairs.",
		Version:      version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := service.Options(model.GenerateRequest{
				Length:    length,
				Quantity:  quantity,
				Uppercase: &uppercase,
				Numbers:   &numbers,
				Symbols:   &symbols,
			})
			if err != nil {
				return err
			}

			var src crypto.Source = crypto.MathSource{}
			if secure {
				src = crypto.SecureSource{}
			}

			view := presenter.Text{Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
			svc := service.NewGeneratorService(src, view, service.WithDelay(0))

			items, err := svc.Generate(cmd.Context(), opts)
			if err != nil {
				return err
			}

			exporter := export.NewExporter(d.clipboard, &export.DirSaver{Fs: d.fs, Dir: outDir}, view)
			if copyAll {
				if err := exporter.CopyAll(items); err != nil {
					return err
				}
			}
			if saveCSV {
				path, err := exporter.DownloadCSV(items)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.ErrOrStderr(), path)
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&length, "length", "l", model.DefaultPasswordLength,
		fmt.Sprintf("password length (%d-%d)", model.MinPasswordLength, model.MaxPasswordLength))
	flags.IntVarP(&quantity, "quantity", "n", model.DefaultQuantity,
		fmt.Sprintf("number of accounts (%d-%d)", model.MinQuantity, model.MaxQuantity))
	flags.BoolVar(&numbers, "numbers", true, "include digits")
	flags.BoolVar(&symbols, "symbols", true, "include symbols")
	flags.BoolVar(&uppercase, "uppercase", true, "include uppercase letters")
	flags.BoolVar(&secure, "secure", false, "draw from crypto/rand instead of math/rand")
	flags.BoolVarP(&copyAll, "copy", "c", false, "copy the whole batch to the clipboard")
	flags.BoolVar(&saveCSV, "csv", false, "save the batch as "+export.CSVFilename)
	flags.StringVarP(&outDir, "out", "o", ".", "directory for the csv export")

	return cmd
}
