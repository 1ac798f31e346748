package hostadapter

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

const procCPUInfoPath = "/proc/cpuinfo"

func readProcCPUModel(path string) (string, error) {
	file, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	info, err := readFirstCPUInfoBlock(file)
	if err != nil {
		return "", err
	}

	model := info["model name"]
	if model == "" {
		return "", fmt.Errorf("CPU model name not found in %s", path)
	}
	return model, nil
}

func readFirstCPUInfoBlock(r io.Reader) (map[string]string, error) {
	info := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			break
		}
		parts := strings.SplitN(line, ":", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])
		if key != "" {
			info[key] = value
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading cpuinfo: %w", err)
	}

	return info, nil
}
