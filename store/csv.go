package store

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"assetbook/models"

	"github.com/sirupsen/logrus"
)

const utf8BOM = "\xEF\xBB\xBF"

// CSVHeader 导入导出的固定列顺序，不包含编号
var CSVHeader = []string{
	models.FieldCategory,
	models.FieldSubcategory,
	models.FieldName,
	models.FieldAmount,
	models.FieldMaturityDate,
	models.FieldReminder,
	models.FieldNote,
}

func csvRow(a models.Asset) []string {
	return []string{
		a.Category,
		a.Subcategory,
		a.Name,
		a.Amount.String(),
		a.MaturityText(),
		string(a.Reminder),
		a.Note,
	}
}

// ExportCSV 将标签页导出为带 BOM 的 UTF-8 CSV。
// 标签页为空或不存在时什么也不写，返回 false。
func (s *Store) ExportCSV(tab string, w io.Writer) (bool, error) {
	assets := s.GetAssetsByTab(tab)
	if len(assets) == 0 {
		s.log.WithField("tab", tab).Warn("내보낼 자산 데이터가 없습니다")
		return false, nil
	}

	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(utf8BOM); err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}
	writer := csv.NewWriter(bw)
	if err := writer.Write(CSVHeader); err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}
	for _, a := range assets {
		if err := writer.Write(csvRow(a)); err != nil {
			return false, fmt.Errorf("%w: %v", ErrIO, err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}
	if err := bw.Flush(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrIO, err)
	}

	s.log.WithFields(logrus.Fields{"tab": tab, "count": len(assets)}).Info("CSV 내보내기 완료")
	return true, nil
}

// ExportCSVFile 导出到文件；没有数据时不创建文件
func (s *Store) ExportCSVFile(tab, path string) (bool, error) {
	var buf bytes.Buffer
	ok, err := s.ExportCSV(tab, &buf)
	if !ok || err != nil {
		return ok, err
	}
	if err := WriteFileAtomic(path, buf.Bytes(), 0o644); err != nil {
		return false, fmt.Errorf("%w: write %s: %v", ErrIO, path, err)
	}
	return true, nil
}

// ImportCSV 从 CSV 读取记录追加到标签页，clearExisting 为 true 时先清空。
// 缺失的列取默认值（金额为 0，其余为空），金额中的千分位会被去掉。
// 每行都分配新的编号；所有行解析成功后才修改数据，最后只写盘一次。
func (s *Store) ImportCSV(tab string, r io.Reader, clearExisting bool) (int, error) {
	if !s.HasTab(tab) {
		return 0, unknownTab(tab)
	}

	imported, err := parseCSV(r)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	i := s.indexOf(tab)
	if i < 0 {
		s.mu.Unlock()
		return 0, unknownTab(tab)
	}
	if clearExisting {
		s.tabs[i].Assets = []models.Asset{}
	}
	for _, a := range imported {
		s.lastID++
		a.ID = s.lastID
		s.tabs[i].Assets = append(s.tabs[i].Assets, a)
	}
	err = s.saveLocked()
	s.mu.Unlock()

	s.log.WithFields(logrus.Fields{"tab": tab, "count": len(imported), "clear": clearExisting}).Info("CSV 가져오기 완료")
	s.emitDataChanged(tab)
	return len(imported), err
}

// ImportCSVFile 从文件导入
func (s *Store) ImportCSVFile(tab, path string, clearExisting bool) (int, error) {
	if !s.HasTab(tab) {
		return 0, unknownTab(tab)
	}
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("%w: open %s: %v", ErrIO, path, err)
	}
	defer f.Close()
	return s.ImportCSV(tab, f, clearExisting)
}

func parseCSV(r io.Reader) ([]models.Asset, error) {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && string(head) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, csvReadError(err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	known := 0
	for _, name := range CSVHeader {
		if _, ok := cols[name]; ok {
			known++
		}
	}
	if known == 0 {
		return nil, fmt.Errorf("%w: CSV 헤더에 알 수 있는 열이 없습니다", ErrInvalidInput)
	}

	get := func(record []string, name, def string) string {
		i, ok := cols[name]
		if !ok || i >= len(record) {
			return def
		}
		return record[i]
	}

	var assets []models.Asset
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, csvReadError(err)
		}
		in := models.AssetInput{
			Category:     get(record, models.FieldCategory, ""),
			Subcategory:  get(record, models.FieldSubcategory, ""),
			Name:         get(record, models.FieldName, ""),
			Amount:       get(record, models.FieldAmount, "0"),
			MaturityDate: get(record, models.FieldMaturityDate, ""),
			Reminder:     get(record, models.FieldReminder, ""),
			Note:         get(record, models.FieldNote, ""),
		}
		a, err := in.NormalizeImported()
		if err != nil {
			return nil, fmt.Errorf("%w: %d행: %v", ErrInvalidInput, line, err)
		}
		assets = append(assets, a)
	}
	return assets, nil
}

func csvReadError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return fmt.Errorf("%w: %v", ErrIO, err)
}
