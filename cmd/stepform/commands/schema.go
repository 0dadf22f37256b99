package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-stepform/pkg/schema"
)

func schemaCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Print the OpenAPI document describing the stored record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := schema.ValidateDocument(cmd.Context()); err != nil {
				return err
			}
			out, err := schema.Encode(schema.Format(strings.ToLower(format)))
			if err != nil {
				return err
			}
			a.logger.Debug().Str("format", format).Int("bytes", len(out)).Msg("schema encoded")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(string(out), "\n"))
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(schema.FormatYAML), "output format: json or yaml")
	return cmd
}
