package main

import "github.com/pkg/errors"

const ( // empirically determined
	ptToHeight    = 100  //72
	widthToHeight = 0.82 //

	maxMusicFontPt = 16.0
	minMusicFontPt = 6.0
)

func GetFontPt(heightInches float64) float64 {
	return heightInches * ptToHeight
}

func GetFontHeight(fontPt float64) (heightInches float64) {
	return fontPt / ptToHeight
}

func GetCourierFontWidthFromHeight(height float64) float64 {
	return widthToHeight * height
}

func GetCourierFontHeightFromWidth(width float64) float64 {
	return width / widthToHeight
}

// determineMusicFontPt picks the largest courier size at which the longest
// music line still fits across a column.
func determineMusicFontPt(lines []string, bnd bounds) (fontPt float64, err error) {
	longest := 0
	for _, line := range lines {
		if n := len(line); n > longest {
			longest = n
		}
	}
	if longest == 0 {
		return 0, errors.New("no music to size the font from")
	}

	width := bnd.Width() - padding
	fontWidth := width / float64(longest)
	fontPt = GetFontPt(GetCourierFontHeightFromWidth(fontWidth))
	switch {
	case fontPt > maxMusicFontPt:
		fontPt = maxMusicFontPt
	case fontPt < minMusicFontPt:
		return 0, errors.Errorf("longest line (%v chars) does not fit the column", longest)
	}
	return fontPt, nil
}
