package consent

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// TOMLStore keeps flags as top level keys of a TOML file. A missing file
// holds no flags.
type TOMLStore struct {
	Path string
}

func (store *TOMLStore) load() (flags map[string]interface{}, err error) {
	flags = make(map[string]interface{})
	var data []byte
	if data, err = os.ReadFile(store.Path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			err = nil
		}
		return
	}
	err = toml.Unmarshal(data, &flags)
	return
}

func (store *TOMLStore) Value(flag string) (value string, found bool, err error) {
	var flags map[string]interface{}
	if flags, err = store.load(); err != nil {
		return
	}
	var raw interface{}
	if raw, found = flags[flag]; !found {
		return
	}
	return fmt.Sprint(raw), true, nil
}

func (store *TOMLStore) SetValue(flag string, value string) (err error) {
	var flags map[string]interface{}
	if flags, err = store.load(); err != nil {
		return
	}
	flags[flag] = value

	if err = os.MkdirAll(filepath.Dir(store.Path), 0755); err != nil {
		return
	}
	var file *os.File
	if file, err = os.Create(store.Path); err != nil {
		return
	}
	defer file.Close()
	writer := bufio.NewWriter(file)
	if err = toml.NewEncoder(writer).Encode(flags); err != nil {
		return
	}
	return writer.Flush()
}
