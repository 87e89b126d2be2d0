package wal

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// FileModePrivate rw------- 帳務資料只有擁有者可讀寫
const FileModePrivate fs.FileMode = 0600

// ErrClosed WAL 已關閉
var ErrClosed = errors.New("wal: closed")

// WAL 是 JSON Lines 格式的 Write-Ahead Log，每筆紀錄一行
type WAL struct {
	file *os.File
	path string
	mu   sync.Mutex
}

// Open 開啟或建立一個 WAL 檔案
// O_RDWR讀寫模式
// O_APPEND 每次寫入時自動跳到文件末尾
// O_CREATE 如果文件不存在則建立
// 上層目錄不存在時會一併建立
func Open(path string) (*WAL, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("wal: create dir for %s: %w", path, err)
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModePrivate)
	if err != nil {
		return nil, fmt.Errorf("wal: open %s: %w", path, err)
	}
	return &WAL{
		file: file,
		path: path,
	}, nil
}

// Path 檔案路徑
func (w *WAL) Path() string {
	return w.path
}

// Write 寫入一筆資料並刷入硬碟，回傳 nil 代表這筆紀錄已經持久化
func (w *WAL) Write(v any) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return ErrClosed
	}
	if err := json.NewEncoder(w.file).Encode(v); err != nil {
		return fmt.Errorf("wal: encode: %w", err)
	}
	return w.file.Sync()
}

// Close 關閉檔案
func (w *WAL) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return nil
	}
	err := w.file.Close()
	w.file = nil
	return err
}

// ReadAll 從頭依序讀取所有紀錄
// callback 一次只拿到一筆 raw JSON，避免一次將所有資料載入記憶體
// 最後一行寫到一半 (沒有換行) 時截掉該行並視為正常結束，中間的壞紀錄則回傳錯誤
func (w *WAL) ReadAll(callback func(jsonRaw []byte) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.file == nil {
		return ErrClosed
	}

	// 確保從頭讀取
	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}

	decoder := json.NewDecoder(w.file)
	var offset int64 // 最後一筆完整紀錄的結尾
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			torn, terr := w.truncateTornTail(offset)
			if terr != nil {
				return terr
			}
			if torn {
				return nil
			}
			return fmt.Errorf("wal: decode at offset %d: %w", offset, err)
		}
		offset = decoder.InputOffset()
		if err := callback(raw); err != nil {
			return err
		}
	}
}

// truncateTornTail offset 之後若只剩一段沒有換行的殘缺紀錄，截掉它並回傳 true
func (w *WAL) truncateTornTail(offset int64) (bool, error) {
	info, err := w.file.Stat()
	if err != nil {
		return false, fmt.Errorf("wal: stat: %w", err)
	}
	tail := make([]byte, info.Size()-offset)
	if _, err := w.file.ReadAt(tail, offset); err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("wal: read tail: %w", err)
	}
	partial := bytes.TrimLeft(tail, " \t\r\n")
	if bytes.IndexByte(partial, '\n') >= 0 {
		return false, nil
	}
	if err := w.file.Truncate(offset + int64(len(tail)-len(partial))); err != nil {
		return false, fmt.Errorf("wal: truncate torn tail: %w", err)
	}
	return true, w.file.Sync()
}

// Replay 依序把每筆紀錄解碼成 T 後交給 apply
func Replay[T any](w *WAL, apply func(rec T) error) error {
	return w.ReadAll(func(jsonRaw []byte) error {
		var rec T
		if err := json.Unmarshal(jsonRaw, &rec); err != nil {
			return fmt.Errorf("wal: unmarshal: %w", err)
		}
		return apply(rec)
	})
}
