package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/rigelrozanski/tunetrack/abc"
)

var (
	SheetCmd = &cobra.Command{
		Use:   "sheet [source]",
		Short: "generate a one page pdf tune card",
		Long: `generate a one page pdf tune card from ABC text. The tune can be
transposed (--steps, --to) and cut down to its first bars (--bars) before it
is laid out.`,
		Args: cobra.MaximumNArgs(1),
		RunE: sheetCmd,
	}

	numColumnsFlag uint16
	sheetBarsFlag  int
	sheetStepsFlag int
	sheetKeyFlag   string
	sheetOutFlag   string
)

func init() {
	SheetCmd.PersistentFlags().Uint16Var(
		&numColumnsFlag, "columns", 1,
		"number of columns to print the tune into")
	SheetCmd.PersistentFlags().IntVar(
		&sheetBarsFlag, "bars", 0,
		"only print this many bars (0 prints the whole tune)")
	SheetCmd.PersistentFlags().IntVar(
		&sheetStepsFlag, "steps", 0,
		"transpose by this many semitones")
	SheetCmd.PersistentFlags().StringVar(
		&sheetKeyFlag, "to", "",
		"key to transpose into")
	SheetCmd.PersistentFlags().StringVar(
		&sheetOutFlag, "out", "",
		"pdf file to write (default tunesheet_<title>.pdf)")
	RootCmd.AddCommand(SheetCmd)
}

func sheetCmd(cmd *cobra.Command, args []string) error {
	if numColumnsFlag < 1 {
		return errors.New("columns must be at least 1")
	}
	content, err := readSource(sourceArg(args))
	if err != nil {
		return err
	}
	if sheetStepsFlag != 0 || sheetKeyFlag != "" {
		content, err = abc.Transpose(content, sheetStepsFlag, sheetKeyFlag)
		if err != nil {
			return err
		}
	}
	if sheetBarsFlag > 0 {
		content = abc.ExtractPreview(content, sheetBarsFlag)
	}

	pdf := gofpdf.New("P", "in", "Letter", "")
	pdf.SetMargins(0, 0, 0)
	pdf.AddPage()

	hc, err := renderSheet(pdf, content, numColumnsFlag)
	if err != nil {
		return err
	}

	filename := sheetOutFlag
	if filename == "" {
		filename = fmt.Sprintf("tunesheet_%v.pdf", strings.Replace(hc.title, " ", "_", -1))
	}
	if err := pdf.OutputFileAndClose(filename); err != nil {
		return errors.Wrapf(err, "writing %v", filename)
	}
	if fi, err := os.Stat(filename); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %v (%v)\n", filename, humanize.Bytes(uint64(fi.Size())))
	}
	return nil
}

// renderSheet lays the tune out onto a single page
func renderSheet(pdf Pdf, content string, numCols uint16) (hc headerContent, err error) {

	// each line of the music is attempted to be fit into elements
	// in the order provided within elemKinds
	elemKinds := []sheetElement{
		spacer{},
		partLabel{},
		fieldLine{},
		musicLine{},
	}

	lines := strings.Split(strings.Replace(content, "\r\n", "\n", -1), "\n")
	lines = deleteComments(lines)

	lines, hc, err = parseHeader(lines)
	if err != nil {
		return hc, err
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	bnd := printHeader(pdf, pageBounds(), hc)

	//seperate out remaining bounds into columns
	bndsColsIndex := 0
	bndsCols := splitBoundsIntoColumns(bnd, numCols)

	musicFontPt, err = determineMusicFontPt(musicLines(lines), bndsCols[0])
	if err != nil {
		return hc, err
	}

	parsedElems := []sheetElement{}
OUTER:
	for len(lines) > 0 {
		allErrs := []string{}
		for _, elem := range elemKinds {
			reduced, newElem, err := elem.parseText(lines)
			if err == nil {
				lines = reduced
				parsedElems = append(parsedElems, newElem)
				continue OUTER
			}
			allErrs = append(allErrs, err.Error())
		}
		return hc, errors.Errorf("could not parse tune at line %q: %v", lines[0], allErrs)
	}

	// print the elements
	//  - use a dummy pdf to test whether the borders are exceeded within
	//    the current column, if so move to the next column
	for _, el := range parsedElems {
		bndNew := el.printPDF(dummyPdf{}, bndsCols[bndsColsIndex])
		if bndNew.Height() < padding/2 {
			bndsColsIndex++
			if bndsColsIndex >= len(bndsCols) {
				return hc, errors.New("tune doesn't fit on one sheet")
			}
		}
		bndsCols[bndsColsIndex] = el.printPDF(pdf, bndsCols[bndsColsIndex])
	}
	return hc, nil
}
