package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"xdao.co/elbonian/cidutil"
	"xdao.co/elbonian/compliance"
	"xdao.co/elbonian/convertrpc"
	"xdao.co/elbonian/elbonian"
	"xdao.co/elbonian/model"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) == 0 {
		printUsage(errOut)
		return 2
	}

	switch args[0] {
	case "convert":
		return cmdConvert(args[1:], out, errOut)
	case "to-arabic":
		return cmdSingle("to-arabic", args[1:], out, errOut, func(n elbonian.Numeral) string { return strconv.Itoa(n.Arabic()) })
	case "to-elbonian":
		return cmdSingle("to-elbonian", args[1:], out, errOut, elbonian.Numeral.Elbonian)
	case "cid":
		return cmdCID(args[1:], out, errOut)
	case "explain":
		return cmdExplain(args[1:], out, errOut)
	case "table":
		return cmdTable(args[1:], out, errOut)
	case "remote":
		return cmdRemote(args[1:], out, errOut)
	case "help", "-h", "--help":
		printUsage(out)
		return 0
	default:
		fmt.Fprintf(errOut, "unknown command: %s\n\n", args[0])
		printUsage(errOut)
		return 2
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, "elbonian: Elbonian/Arabic numeral converter")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintln(w, "  elbonian convert [--mode permissive|strict] [--format text|json|yaml] <numeral> [<numeral> ...]")
	fmt.Fprintln(w, "  elbonian to-arabic [--mode permissive|strict] <numeral>")
	fmt.Fprintln(w, "  elbonian to-elbonian [--mode permissive|strict] <numeral>")
	fmt.Fprintln(w, "  elbonian cid [--verify <CID>] <numeral>")
	fmt.Fprintln(w, "  elbonian explain <numeral>")
	fmt.Fprintln(w, "  elbonian table [--from <n>] [--to <n>]")
	fmt.Fprintln(w, "  elbonian remote --addr <host:port> [--timeout <d>] (to-arabic|to-elbonian|cid) <numeral>")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Notes:")
	fmt.Fprintln(w, "  - a numeral is either decimal (1..9999) or Elbonian (symbols N M D C Y X J I)")
	fmt.Fprintln(w, "  - permissive mode trims surrounding whitespace; strict mode rejects it")
	fmt.Fprintln(w, "  - exit status is 1 when any numeral is rejected, 2 on usage errors")
}

func modeFlag(fs *flag.FlagSet) *string {
	return fs.String("mode", "permissive", "Compliance mode: permissive|strict")
}

func cmdConvert(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	fs.SetOutput(errOut)
	modeName := modeFlag(fs)
	format := fs.String("format", "text", "Output format: text|json|yaml")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(errOut, "usage: elbonian convert [--mode permissive|strict] [--format text|json|yaml] <numeral> ...")
		return 2
	}
	if _, err := compliance.ParseMode(*modeName); err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}

	responses := make([]model.ConversionResponse, 0, fs.NArg())
	failed := false
	for _, in := range fs.Args() {
		resp := model.Respond(model.ConversionRequest{Input: in, Compliance: model.ComplianceMode(*modeName)})
		if resp.Error != nil {
			failed = true
		}
		responses = append(responses, resp)
	}

	switch *format {
	case "text":
		for _, r := range responses {
			if r.Error != nil {
				fmt.Fprintf(errOut, "rejected (%s): %s\n", r.Error.RuleID, r.Error.Message)
				continue
			}
			c := r.Conversion
			_, _ = fmt.Fprintf(out, "%d\t%s\n", c.Arabic, c.Elbonian)
		}
	case "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(responses); err != nil {
			fmt.Fprintf(errOut, "encode json: %v\n", err)
			return 1
		}
	case "yaml":
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(responses); err != nil {
			fmt.Fprintf(errOut, "encode yaml: %v\n", err)
			return 1
		}
		_ = enc.Close()
	default:
		fmt.Fprintf(errOut, "unknown format: %s\n", *format)
		return 2
	}

	if failed {
		return 1
	}
	return 0
}

func cmdSingle(name string, args []string, out io.Writer, errOut io.Writer, render func(elbonian.Numeral) string) int {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(errOut)
	modeName := modeFlag(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintf(errOut, "usage: elbonian %s [--mode permissive|strict] <numeral>\n", name)
		return 2
	}
	mode, err := compliance.ParseMode(*modeName)
	if err != nil {
		fmt.Fprintln(errOut, err)
		return 2
	}
	n, err := elbonian.ParseWithMode(fs.Arg(0), mode)
	if err != nil {
		printRejection(errOut, err)
		return 1
	}
	_, _ = fmt.Fprintln(out, render(n))
	return 0
}

func cmdCID(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("cid", flag.ContinueOnError)
	fs.SetOutput(errOut)
	verify := fs.String("verify", "", "Expected CID; exit 1 if it does not match")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(errOut, "usage: elbonian cid [--verify <CID>] <numeral>")
		return 2
	}
	n, err := elbonian.Parse(fs.Arg(0))
	if err != nil {
		printRejection(errOut, err)
		return 1
	}
	if *verify != "" {
		if err := cidutil.Verify(*verify, []byte(n.Elbonian())); err != nil {
			fmt.Fprintf(errOut, "invalid: %v\n", err)
			return 1
		}
		_, _ = fmt.Fprintln(out, "OK")
		return 0
	}
	_, _ = fmt.Fprintln(out, n.CID())
	return 0
}

func cmdExplain(args []string, out io.Writer, errOut io.Writer) int {
	if len(args) != 1 {
		fmt.Fprintln(errOut, "usage: elbonian explain <numeral>")
		return 2
	}
	errs := elbonian.Diagnose(args[0])
	if len(errs) == 0 {
		n, err := elbonian.Parse(args[0])
		if err != nil {
			printRejection(errOut, err)
			return 1
		}
		_, _ = fmt.Fprintf(out, "valid: %d = %s\n", n.Arabic(), n.Elbonian())
		return 0
	}
	for _, err := range errs {
		_, _ = fmt.Fprintf(out, "%s\t%s\n", elbonian.RuleID(err), err)
	}
	return 1
}

func cmdTable(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("table", flag.ContinueOnError)
	fs.SetOutput(errOut)
	from := fs.Int("from", elbonian.MinValue, "First value")
	to := fs.Int("to", elbonian.MaxValue, "Last value")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() != 0 || *from > *to {
		fmt.Fprintln(errOut, "usage: elbonian table [--from <n>] [--to <n>]")
		return 2
	}
	for v := *from; v <= *to; v++ {
		n, err := elbonian.FromArabic(v)
		if err != nil {
			printRejection(errOut, err)
			return 1
		}
		_, _ = fmt.Fprintf(out, "%d\t%s\n", v, n.Elbonian())
	}
	return 0
}

func cmdRemote(args []string, out io.Writer, errOut io.Writer) int {
	fs := flag.NewFlagSet("remote", flag.ContinueOnError)
	fs.SetOutput(errOut)
	addr := fs.String("addr", "", "Converter daemon address (host:port)")
	timeout := fs.Duration("timeout", 5*time.Second, "Per-call timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *addr == "" || fs.NArg() != 2 {
		fmt.Fprintln(errOut, "usage: elbonian remote --addr <host:port> (to-arabic|to-elbonian|cid) <numeral>")
		return 2
	}

	client, err := convertrpc.Dial(*addr, convertrpc.DialOptions{Timeout: *timeout})
	if err != nil {
		fmt.Fprintf(errOut, "dial %s: %v\n", *addr, err)
		return 1
	}
	defer client.Close()
	client.Timeout = *timeout

	return remoteCall(context.Background(), client, fs.Arg(0), fs.Arg(1), out, errOut)
}

func remoteCall(ctx context.Context, client *convertrpc.Client, op, input string, out io.Writer, errOut io.Writer) int {
	var (
		result string
		err    error
	)
	switch op {
	case "to-arabic":
		var v int
		v, err = client.ToArabic(ctx, input)
		result = strconv.Itoa(v)
	case "to-elbonian":
		result, err = client.ToElbonian(ctx, input)
	case "cid":
		result, err = client.CID(ctx, input)
	default:
		fmt.Fprintf(errOut, "unknown remote operation: %s\n", op)
		return 2
	}
	if err != nil {
		printRejection(errOut, err)
		return 1
	}
	_, _ = fmt.Fprintln(out, result)
	return 0
}

func printRejection(w io.Writer, err error) {
	if id := elbonian.RuleID(err); id != "" {
		fmt.Fprintf(w, "rejected (%s): %v\n", id, err)
		return
	}
	fmt.Fprintln(w, err)
}
