package tidyxl

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path"
	"strings"
)

// Workbook is an opened xlsx file with its workbook-level tables
// (sheet list, shared strings, styles) loaded. The tables are
// read-only after New returns, so sheets may be extracted from
// independent goroutines.
type Workbook struct {
	zip           *zip.Reader
	files         map[string]*zip.File
	date1904      bool
	sheetFile     []*zip.File
	sheetNames    []string
	sheetNameFile map[string]*zip.File
	sharedStrings sharedStrings
	styles        *styleSheet
}

// Open reads the file at path into memory and opens it as a Workbook.
func Open(filename string) (*Workbook, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	br := bytes.NewReader(data)
	return New(br, br.Size())
}

func New(reader io.ReaderAt, size int64) (*Workbook, error) {
	zipReader, err := zip.NewReader(reader, size)
	if err != nil {
		return nil, err
	}

	result := Workbook{
		zip:    zipReader,
		styles: &styleSheet{},
	}

	err = result.load()
	if err != nil {
		return nil, err
	}

	return &result, nil
}

func (w *Workbook) load() error {
	w.files = make(map[string]*zip.File, len(w.zip.File))
	for _, file := range w.zip.File {
		w.files[file.Name] = file
	}

	workbookRelsFile, ok := w.files["xl/_rels/workbook.xml.rels"]
	if !ok {
		return ErrWorkbookRelsNotExist
	}

	sheets, err := w.getWorkbookRels(workbookRelsFile)
	if err != nil {
		return err
	}

	workbookFile, ok := w.files["xl/workbook.xml"]
	if !ok {
		return ErrWorkbookNotExist
	}

	err = w.fillWorkbook(workbookFile, sheets)
	if err != nil {
		return err
	}

	sharedStringFile := w.findFile("sharedStrings.xml")
	if sharedStringFile != nil {
		err = w.fillSharedStrings(sharedStringFile)
		if err != nil {
			return err
		}
	}

	stylesFile := w.findFile("styles.xml")
	if stylesFile != nil {
		err = w.fillStyles(stylesFile)
		if err != nil {
			return err
		}
	}

	return nil
}

func (w *Workbook) findFile(name string) *zip.File {
	for _, file := range w.files {
		if strings.HasSuffix(file.Name, name) {
			return file
		}
	}
	return nil
}

func (w *Workbook) getWorkbookRels(zipFile *zip.File) (map[string]string, error) {
	reader, err := zipFile.Open()
	if err != nil {
		return nil, err
	}
	defer reader.Close()

	rels, err := readRels(reader)
	if err != nil {
		return nil, err
	}

	sheets := make(map[string]string, len(rels.Relationship))
	for _, rel := range rels.Relationship {
		if rel.Type == relTypeWorksheet {
			if strings.HasPrefix(rel.Target, "/xl/") {
				sheets[rel.ID] = rel.Target[1:]
			} else {
				sheets[rel.ID] = "xl/" + rel.Target
			}
		}
	}

	return sheets, nil
}

func (w *Workbook) fillWorkbook(zipFile *zip.File, sheets map[string]string) error {
	reader, err := zipFile.Open()
	if err != nil {
		return err
	}
	defer reader.Close()

	wb, err := readWorkbook(reader)
	if err != nil {
		return err
	}

	w.date1904 = wb.WorkbookPr.Date1904

	w.sheetFile = make([]*zip.File, 0, len(wb.Sheets))
	w.sheetNames = make([]string, 0, len(wb.Sheets))
	w.sheetNameFile = make(map[string]*zip.File, len(wb.Sheets))
	for _, sheet := range wb.Sheets {
		sheetPath, ok := sheets[sheet.ID]
		if !ok {
			continue
		}

		file, ok := w.files[sheetPath]
		if !ok {
			continue
		}

		w.sheetFile = append(w.sheetFile, file)
		w.sheetNames = append(w.sheetNames, sheet.Name)
		w.sheetNameFile[sheet.Name] = file
	}

	return nil
}

func (w *Workbook) fillSharedStrings(zipFile *zip.File) error {
	reader, err := zipFile.Open()
	if err != nil {
		return err
	}
	defer reader.Close()

	w.sharedStrings, err = readSharedStrings(reader)
	if err != nil {
		return err
	}
	return nil
}

func (w *Workbook) fillStyles(zipFile *zip.File) error {
	reader, err := zipFile.Open()
	if err != nil {
		return err
	}
	defer reader.Close()

	w.styles, err = readStyleSheet(reader)
	if err != nil {
		return err
	}
	return nil
}

func (w *Workbook) SheetNames() []string {
	result := make([]string, len(w.sheetNames))
	copy(result, w.sheetNames)
	return result
}

// Cells extracts the named sheets, or every sheet in workbook order
// when no name is given. An unknown name fails the whole call; a
// sheet that fails mid-extraction is reported on its own SheetCells
// and does not affect its siblings.
func (w *Workbook) Cells(names ...string) ([]SheetCells, error) {
	if len(names) == 0 {
		result := make([]SheetCells, 0, len(w.sheetFile))
		for i, file := range w.sheetFile {
			result = append(result, w.extractSheet(file, w.sheetNames[i]))
		}
		return result, nil
	}

	result := make([]SheetCells, 0, len(names))
	for _, name := range names {
		file, ok := w.sheetNameFile[name]
		if !ok {
			return nil, fmt.Errorf("can not find worksheet %s: %w", name, ErrSheetNotFound)
		}
		result = append(result, w.extractSheet(file, name))
	}
	return result, nil
}

// CellsAt extracts sheets by 1-based workbook position.
func (w *Workbook) CellsAt(positions ...int) ([]SheetCells, error) {
	result := make([]SheetCells, 0, len(positions))
	for _, n := range positions {
		if n < 1 || n > len(w.sheetFile) {
			return nil, fmt.Errorf("can not find worksheet %d: %w", n, ErrSheetNotFound)
		}
		result = append(result, w.extractSheet(w.sheetFile[n-1], w.sheetNames[n-1]))
	}
	return result, nil
}

// sheetComments loads the comment map for one worksheet part by
// following the sheet's own rels file. Missing or unreadable comment
// parts simply yield no comments.
func (w *Workbook) sheetComments(sheetPath string) map[string]string {
	dir, base := path.Split(sheetPath)
	relsFile, ok := w.files[dir+"_rels/"+base+".rels"]
	if !ok {
		return nil
	}

	reader, err := relsFile.Open()
	if err != nil {
		return nil
	}
	rels, err := readRels(reader)
	_ = reader.Close()
	if err != nil {
		return nil
	}

	for _, rel := range rels.Relationship {
		if rel.Type != relTypeComments {
			continue
		}
		target := rel.Target
		if strings.HasPrefix(target, "/") {
			target = target[1:]
		} else {
			target = path.Join(dir, target)
		}
		file, ok := w.files[target]
		if !ok {
			return nil
		}
		commentReader, err := file.Open()
		if err != nil {
			return nil
		}
		comments, err := readComments(commentReader)
		_ = commentReader.Close()
		if err != nil {
			return nil
		}
		return comments
	}
	return nil
}
