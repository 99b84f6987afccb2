package main

import "github.com/jung-kurt/gofpdf"

// Pdf is the part of gofpdf the tune card draws with
type Pdf interface {
	SetLineWidth(width float64)
	Line(x1, y1, x2, y2 float64)
	SetFont(familyStr, styleStr string, size float64)
	Text(x, y float64, txtStr string)
}

var _ Pdf = (*gofpdf.Fpdf)(nil)

// dummyPdf fulfills the interface Pdf, used to measure an element before
// drawing it
type dummyPdf struct{}

var _ Pdf = dummyPdf{}

func (d dummyPdf) SetLineWidth(width float64)                       {}
func (d dummyPdf) Line(x1, y1, x2, y2 float64)                      {}
func (d dummyPdf) SetFont(familyStr, styleStr string, size float64) {}
func (d dummyPdf) Text(x, y float64, txtStr string)                 {}

