// Package office2pdf converts office documents to PDF using headless
// LibreOffice.
//
// # Quick Start
//
// Create a converter and convert a document:
//
//	conv := office2pdf.New()
//	result, err := conv.Convert(ctx, office2pdf.Request{
//	    InputPath: "report.docx",
//	    OutputDir: "out",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.PDFPath)
//
// # Conversion Sequence
//
// Each call runs a linear chain of checks with early-exit failure:
//
//  1. Input must be a regular file
//  2. Output directory is created if absent (idempotent)
//  3. At least one required Chinese font family must be installed
//  4. The soffice executable is located (search path, then a candidate
//     table of standard install locations)
//  5. soffice runs headless with --convert-to pdf, blocking until exit
//
// The PDF filename is the input basename with a .pdf extension, chosen
// by LibreOffice; this package derives it but does not verify the file.
//
// # Font Requirements
//
// Conversion requires one of the families in DefaultRequiredFonts so
// Chinese text renders with real glyphs. On Windows the system font
// directory is scanned; elsewhere fontconfig's fc-list is queried for
// Chinese-language fonts. Override the families with WithRequiredFonts.
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv := office2pdf.New(
//	    office2pdf.WithSofficeBinary("/opt/libreoffice/program/soffice"),
//	    office2pdf.WithRequiredFonts([]string{"Noto Sans CJK SC"}),
//	)
//
// # Timeouts
//
// No timeout is enforced internally; a hung conversion blocks until the
// context is canceled:
//
//	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
//	defer cancel()
//	result, err := conv.Convert(ctx, req)
//
// # LibreOffice Requirements
//
// Conversion requires a LibreOffice installation. The locator checks
// the process search path first, then standard install locations per
// platform (Program Files and drive roots on Windows, /usr/bin and
// friends elsewhere). Use WithSofficeBinary for custom installs.
package office2pdf
