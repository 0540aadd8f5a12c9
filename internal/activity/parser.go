package activity

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bytedance/sonic"

	"github.com/alexanderramin/tempo/internal/domain"
)

// maxLineSize caps a single JSONL line; capture tools can emit very long
// window titles but nothing near this.
const maxLineSize = 1 * 1024 * 1024

// ParseLog reads focus samples from a JSONL stream, one sample per line.
// Blank and malformed lines are skipped; the capture tool appends
// concurrently and a torn last line is normal.
func ParseLog(r io.Reader) ([]domain.FocusSample, error) {
	var samples []domain.FocusSample

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var s domain.FocusSample
		if err := sonic.Unmarshal(line, &s); err != nil {
			continue
		}
		samples = append(samples, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning activity log: %w", err)
	}
	return samples, nil
}
