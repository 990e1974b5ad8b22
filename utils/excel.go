package utils

import (
	"bytes"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// ExcelColumn 내보내기 컬럼 정의 (헤더 + 너비)
type ExcelColumn struct {
	Header string
	Width  float64
}

// BuildWorkbook 헤더 행 + 데이터 행으로 워크북 생성, 컬럼 너비 적용
func BuildWorkbook(sheetName string, columns []ExcelColumn, rows [][]interface{}) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headers := make([]interface{}, len(columns))
	for i, col := range columns {
		headers[i] = col.Header

		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return nil, err
		}
		width := col.Width
		if width == 0 {
			width = 15
		}
		if err := f.SetColWidth(sheetName, name, name, width); err != nil {
			return nil, err
		}
	}

	if err := f.SetSheetRow(sheetName, "A1", &headers); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheetName, cell, &row); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// WorkbookBytes 다운로드 응답용 바이트 버퍼
func WorkbookBytes(f *excelize.File) ([]byte, error) {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ParseFirstSheet 업로드된 엑셀의 첫 시트를 헤더 기준 map 행으로 변환.
// 빈 셀은 빈 문자열로 채운다.
func ParseFirstSheet(r io.Reader) ([]map[string]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("엑셀 파일을 읽는 중 오류가 발생했습니다: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("엑셀 파일에 시트가 없습니다")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return []map[string]string{}, nil
	}

	headers := rows[0]
	result := make([]map[string]string, 0, len(rows)-1)
	for _, row := range rows[1:] {
		record := make(map[string]string, len(headers))
		for i, header := range headers {
			if header == "" {
				continue
			}
			if i < len(row) {
				record[header] = row[i]
			} else {
				record[header] = ""
			}
		}
		result = append(result, record)
	}
	return result, nil
}

// ParseFirstSheetBytes 메모리 버퍼에서 바로 파싱 (multipart 업로드용)
func ParseFirstSheetBytes(data []byte) ([]map[string]string, error) {
	return ParseFirstSheet(bytes.NewReader(data))
}
