package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: office2pdf <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert office documents to PDF (default)")
	fmt.Fprintln(w, "  doctor     Check LibreOffice and font availability")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'office2pdf help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: office2pdf convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert office documents (doc, docx, ppt, pptx, xls, xlsx, ...) to PDF")
	fmt.Fprintln(w, "using headless LibreOffice.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Document file or directory to scan for documents")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -o, --output <dir>     Output directory (default: alongside each input)")
	fmt.Fprintln(w, "  -c, --config <name>    Config file name or path")
	fmt.Fprintln(w, "      --soffice <path>   Path to the soffice executable")
	fmt.Fprintln(w, "  -t, --timeout <dur>    Per-document timeout (e.g., 30s, 2m)")
	fmt.Fprintln(w, "  -w, --workers <n>      Parallel workers for directory input")
	fmt.Fprintln(w, "      --validate         Validate produced PDFs with pdfcpu")
	fmt.Fprintln(w, "  -q, --quiet            Only show errors")
	fmt.Fprintln(w, "  -v, --verbose          Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  OFFICE2PDF_CONFIG       Config file path")
	fmt.Fprintln(w, "  OFFICE2PDF_SOFFICE_BIN  soffice executable path")
	fmt.Fprintln(w, "  OFFICE2PDF_OUTPUT_DIR   Default output directory")
	fmt.Fprintln(w, "  OFFICE2PDF_TIMEOUT      Per-document timeout")
	fmt.Fprintln(w, "  OFFICE2PDF_WORKERS      Batch parallelism")
}

// printDoctorUsage prints usage for the doctor command.
func printDoctorUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: office2pdf doctor [--json]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Check that LibreOffice and at least one required Chinese font are")
	fmt.Fprintln(w, "installed. Exits 1 if the environment cannot convert documents.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: office2pdf version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: office2pdf help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
