package cmd

import (
	"bufio"
	"io"
	"strings"

	"github.com/spf13/cobra"

	mdwerror "github.com/msto63/galleon/foundation/core/error"
	mdwlog "github.com/msto63/galleon/foundation/core/log"
	"github.com/msto63/galleon/internal/measure/output"
	"github.com/msto63/galleon/internal/measure/service"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [messung...]",
		Short: "Rechnet Längenangaben um",
		Long: `Rechnet eine Längenangabe in Meter, Millimeter und Fuß/Zoll um.

Die Argumente werden mit Leerzeichen zu einer Angabe verbunden.
Ohne Argumente wird am Terminal eine Zeile abgefragt; bei einer Pipe
wird jede Zeile einzeln umgerechnet.

Beispiele:
  galleon convert 5 ft 7 1/4 in
  galleon convert "2' 4 1/64\""
  galleon convert -o json 1.70 m
  cat messungen.txt | galleon convert`,
		RunE: a.runConvert,
	}
}

func (a *app) runConvert(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(a.cfg.Output.Format)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()
	in := cmd.InOrStdin()

	var total, failed int
	write := func(w *output.Writer) func(*service.Conversion) error {
		return func(conv *service.Conversion) error {
			total++
			if !conv.Valid() {
				failed++
			}
			return w.Write(out, conv)
		}
	}

	switch {
	case len(args) > 0:
		conv, err := a.svc.Convert(ctx, strings.Join(args, " "))
		if err != nil {
			return err
		}
		w := output.NewWriter(output.Options{Format: format, Fields: a.cfg.Output.Fields})
		if err := write(w)(conv); err != nil {
			return err
		}

	case a.isTerminal(in):
		io.WriteString(out, a.cfg.TUI.Prompt)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && err != io.EOF {
			return mdwerror.Wrap(err, "failed to read input").
				WithCode(mdwerror.CodeInvalidInput).
				WithOperation("cmd.convert")
		}
		line = strings.TrimRight(line, "\r\n")
		if a.cfg.Output.Echo() {
			io.WriteString(out, line+"\n")
		}

		conv, err := a.svc.Convert(ctx, line)
		if err != nil {
			return err
		}
		w := output.NewWriter(output.Options{Format: format, Fields: a.cfg.Output.Fields})
		if err := write(w)(conv); err != nil {
			return err
		}

	default:
		w := output.NewWriter(output.Options{
			Format: format,
			Fields: a.cfg.Output.Fields,
			Echo:   a.cfg.Output.Echo(),
		})
		if err := a.svc.ConvertLines(ctx, in, write(w)); err != nil {
			return err
		}
	}

	a.logger.Debug("Conversions written", mdwlog.Int("total", total), mdwlog.Int("failed", failed))

	if failed > 0 {
		return mdwerror.Newf("%d of %d conversions had errors", failed, total).
			WithCode(mdwerror.CodeValidationFailed).
			WithOperation("cmd.convert").
			WithDetail("total", total).
			WithDetail("failed", failed)
	}
	return nil
}
