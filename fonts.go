package office2pdf

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/docsuite/office2pdf/internal/hints"
)

// FontChecker verifies that at least one required CJK font family is
// installed on the host.
type FontChecker interface {
	Check(ctx context.Context) error
}

// FontconfigChecker detects fonts through the fontconfig utility,
// restricting the listing to Chinese-language fonts. Used on Linux and
// macOS.
type FontconfigChecker struct {
	Runner   CommandRunner
	Required []string
}

func (c *FontconfigChecker) Check(ctx context.Context) error {
	stdout, _, err := c.Runner.Run(ctx, "fc-list", ":lang=zh")
	if err != nil {
		return fmt.Errorf("%w: %v%s", ErrFontProbe, err, hints.ForFontconfig())
	}

	for _, family := range c.Required {
		if strings.Contains(stdout, family) {
			return nil
		}
	}

	return fmt.Errorf("%w%s", ErrFontMissing, hints.ForMissingFonts(c.Required))
}

// FontDirChecker detects fonts by scanning a system font directory for
// TrueType files whose names contain a required family. Used on Windows,
// where fontconfig is normally absent.
type FontDirChecker struct {
	Dir      string
	Required []string
}

func (c *FontDirChecker) Check(ctx context.Context) error {
	entries, err := os.ReadDir(c.Dir)
	if err != nil {
		return fmt.Errorf("%w: reading %s: %v", ErrFontProbe, c.Dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !isTrueTypeFile(name) {
			continue
		}
		for _, family := range c.Required {
			if strings.Contains(name, family) {
				return nil
			}
		}
	}

	return fmt.Errorf("%w%s", ErrFontMissing, hints.ForMissingFonts(c.Required))
}

// isTrueTypeFile reports whether name looks like a TrueType font file.
// Windows ships CJK fonts as both .ttf and .ttc collections.
func isTrueTypeFile(name string) bool {
	lower := strings.ToLower(name)
	return strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".ttc")
}
