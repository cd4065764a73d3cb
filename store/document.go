package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"assetbook/models"
)

// Tab 标签页及其资产记录
type Tab struct {
	Name   string         `json:"name"`
	Assets []models.Asset `json:"assets"`
}

func (t Tab) clone() Tab {
	out := Tab{Name: t.Name, Assets: make([]models.Asset, len(t.Assets))}
	for i, a := range t.Assets {
		out.Assets[i] = a.Clone()
	}
	return out
}

const documentIndent = "    "

// encodeDocument 按标签页顺序编码整个数据文件，非 ASCII 字符原样写出
func encodeDocument(tabs []Tab) ([]byte, error) {
	var compact bytes.Buffer
	compact.WriteByte('{')
	for i, tab := range tabs {
		if i > 0 {
			compact.WriteByte(',')
		}
		key, err := marshalNoEscape(tab.Name)
		if err != nil {
			return nil, err
		}
		compact.Write(key)
		compact.WriteString(":[")
		for j, a := range tab.Assets {
			if j > 0 {
				compact.WriteByte(',')
			}
			raw, err := a.EncodeDocument()
			if err != nil {
				return nil, fmt.Errorf("encode asset %d in %q: %w", a.ID, tab.Name, err)
			}
			compact.Write(raw)
		}
		compact.WriteByte(']')
	}
	compact.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", documentIndent); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func marshalNoEscape(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// decodeDocument 保持键顺序解码数据文件；重复的键以后出现的为准，位置保持首次出现处
func decodeDocument(data []byte) ([]Tab, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return nil, nil, errors.New("document root is not an object")
	}

	var (
		tabs     []Tab
		warnings []string
		pos      = map[string]int{}
	)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		name, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected token %v", tok)
		}
		var raws []json.RawMessage
		if err := dec.Decode(&raws); err != nil {
			return nil, nil, fmt.Errorf("tab %q: %w", name, err)
		}
		tab := Tab{Name: name, Assets: make([]models.Asset, 0, len(raws))}
		for _, raw := range raws {
			a, warns, err := models.DecodeDocument(raw)
			if err != nil {
				return nil, nil, fmt.Errorf("tab %q: %w", name, err)
			}
			for _, w := range warns {
				warnings = append(warnings, fmt.Sprintf("%s: %s", name, w))
			}
			tab.Assets = append(tab.Assets, a)
		}
		if i, dup := pos[name]; dup {
			tabs[i] = tab
			continue
		}
		pos[name] = len(tabs)
		tabs = append(tabs, tab)
	}
	if _, err := dec.Token(); err != nil {
		return nil, nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, nil, errors.New("trailing data after document")
	}
	return tabs, warnings, nil
}

// WriteFileAtomic 先写临时文件再重命名，避免写到一半的文件覆盖旧数据
func WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpName)
		}
	}()
	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	if err = os.Chmod(tmpName, perm); err != nil {
		return err
	}
	err = os.Rename(tmpName, path)
	return err
}
