package securefs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	sferrors "github.com/HueCodes/Rust-Lock/internal/errors"
)

// FileInfo describes one stored object in a listing. Size is the
// encrypted size on disk, not the plaintext size; the sidecar holds the
// plaintext size for objects that still have one.
type FileInfo struct {
	Name        string
	Size        uint64
	HasMetadata bool
}

// SecureFileOps combines the buffer and streaming engines with a storage
// root to provide name-addressed encrypted object operations.
type SecureFileOps struct {
	encryptor *Encryptor
	stream    *StreamEncryptor
	root      string
	compress  bool
	log       *logrus.Logger
}

// NewSecureFileOps builds a façade over root using the cipher derived by
// km. Compression starts disabled and logging defaults to a warn-level
// logger; both have chainable setters.
func NewSecureFileOps(km *KeyManager, root string) *SecureFileOps {
	log := logrus.New()
	log.SetLevel(logrus.WarnLevel)
	return &SecureFileOps{
		encryptor: NewEncryptor(km.Cipher()),
		stream:    NewStreamEncryptor(km.Cipher()),
		root:      root,
		log:       log,
	}
}

// WithCompression toggles transparent compression for buffer-mode writes
// and reads, and marks streamed objects accordingly.
func (s *SecureFileOps) WithCompression(enabled bool) *SecureFileOps {
	s.compress = enabled
	return s
}

// WithLogger replaces the façade's logger. A nil logger keeps the
// current one.
func (s *SecureFileOps) WithLogger(log *logrus.Logger) *SecureFileOps {
	if log != nil {
		s.log = log
	}
	return s
}

func (s *SecureFileOps) objectPath(name string) string {
	return filepath.Join(s.root, name)
}

// WriteEncrypted seals data in the single-shot format and stores it
// under name, recording the metadata sidecar once the object is on disk.
func (s *SecureFileOps) WriteEncrypted(name string, data []byte) error {
	s.log.WithFields(logrus.Fields{
		"file":     name,
		"size":     len(data),
		"compress": s.compress,
	}).Debug("encrypting file in buffer mode")

	if err := os.MkdirAll(s.root, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory %s: %w", s.root, err)
	}

	var sealed []byte
	var err error
	if s.compress {
		sealed, err = s.encryptor.EncryptCompressed(data, nil)
	} else {
		sealed, err = s.encryptor.Encrypt(data, nil)
	}
	if err != nil {
		return err
	}

	path := s.objectPath(name)
	if err := os.WriteFile(path, sealed, 0600); err != nil {
		return fmt.Errorf("failed to write encrypted file %s: %w", name, err)
	}
	if err := recordMetadata(path, uint64(len(data))); err != nil {
		return err
	}

	s.log.WithFields(logrus.Fields{
		"file":  name,
		"bytes": len(data),
	}).Info("file encrypted successfully")
	return nil
}

// ReadEncrypted loads and opens the object stored under name as a
// single-shot payload, honoring the façade compression setting.
func (s *SecureFileOps) ReadEncrypted(name string) ([]byte, error) {
	data, err := s.readObject(name)
	if err != nil {
		return nil, err
	}

	if s.compress {
		return s.encryptor.DecryptCompressed(data, nil)
	}
	return s.encryptor.Decrypt(data, nil)
}

// WriteEncryptedStream seals r into the chunked stream format under
// name, binding every chunk to the object name. The header's compressed
// flag records the façade setting. Returns the plaintext bytes consumed.
// A failed write can leave a partial object behind; rerunning the write
// replaces it.
func (s *SecureFileOps) WriteEncryptedStream(name string, r io.Reader) (uint64, error) {
	s.log.WithFields(logrus.Fields{
		"file":     name,
		"compress": s.compress,
	}).Debug("encrypting file in streaming mode")

	if err := os.MkdirAll(s.root, 0700); err != nil {
		return 0, fmt.Errorf("failed to create storage directory %s: %w", s.root, err)
	}

	path := s.objectPath(name)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return 0, fmt.Errorf("failed to create encrypted file %s: %w", name, err)
	}

	flags := FormatFlags{Compressed: s.compress}
	written, err := s.stream.EncryptStream(r, f, flags, []byte(name))
	if err != nil {
		f.Close()
		return written, err
	}
	if err := f.Close(); err != nil {
		return written, fmt.Errorf("failed to close encrypted file %s: %w", name, err)
	}
	if err := recordMetadata(path, written); err != nil {
		return written, err
	}

	s.log.WithFields(logrus.Fields{
		"file":       name,
		"bytes":      written,
		"compressed": flags.Compressed,
	}).Info("file encrypted successfully in streaming mode")
	return written, nil
}

// ReadEncryptedStream opens the chunked object stored under name and
// writes the plaintext to w. Returns the plaintext byte count and
// whether the header carried the compressed flag.
func (s *SecureFileOps) ReadEncryptedStream(name string, w io.Writer) (uint64, bool, error) {
	f, err := os.Open(s.objectPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, false, fmt.Errorf("%w: %s", sferrors.ErrFileNotFound, name)
		}
		return 0, false, fmt.Errorf("failed to open encrypted file %s: %w", name, err)
	}
	defer f.Close()

	read, flags, err := s.stream.DecryptStream(f, w, []byte(name))
	if err != nil {
		return read, flags.Compressed, err
	}

	s.log.WithFields(logrus.Fields{
		"file":       name,
		"bytes":      read,
		"compressed": flags.Compressed,
	}).Info("file decrypted successfully in streaming mode")
	return read, flags.Compressed, nil
}

// ReadEncryptedAuto loads the object stored under name and detects its
// format from the leading byte: version 2 marks a chunked stream bound
// to the object name, anything else is treated as a single-shot object
// under the façade compression setting. Returns the plaintext and
// whether the object was marked compressed.
//
// Returns ErrEmptyObject when the stored object has zero length, since
// no valid object of either format is empty.
func (s *SecureFileOps) ReadEncryptedAuto(name string) ([]byte, bool, error) {
	data, err := s.readObject(name)
	if err != nil {
		return nil, false, err
	}
	if len(data) == 0 {
		return nil, false, fmt.Errorf("%w: %s", sferrors.ErrEmptyObject, name)
	}

	if data[0] == VersionV2Stream {
		var out bytes.Buffer
		_, flags, err := s.stream.DecryptStream(bytes.NewReader(data), &out, []byte(name))
		if err != nil {
			return nil, false, err
		}
		return out.Bytes(), flags.Compressed, nil
	}

	if s.compress {
		plaintext, err := s.encryptor.DecryptCompressed(data, nil)
		if err != nil {
			return nil, false, err
		}
		return plaintext, true, nil
	}
	plaintext, err := s.encryptor.Decrypt(data, nil)
	if err != nil {
		return nil, false, err
	}
	return plaintext, false, nil
}

// ReadEncryptedStreamAuto behaves like ReadEncryptedAuto but writes the
// plaintext to w. The object is still loaded whole to sniff the leading
// byte before dispatch.
func (s *SecureFileOps) ReadEncryptedStreamAuto(name string, w io.Writer) (uint64, bool, error) {
	data, err := s.readObject(name)
	if err != nil {
		return 0, false, err
	}
	if len(data) == 0 {
		return 0, false, fmt.Errorf("%w: %s", sferrors.ErrEmptyObject, name)
	}

	if data[0] == VersionV2Stream {
		read, flags, err := s.stream.DecryptStream(bytes.NewReader(data), w, []byte(name))
		if err != nil {
			return read, flags.Compressed, err
		}
		return read, flags.Compressed, nil
	}

	var plaintext []byte
	if s.compress {
		plaintext, err = s.encryptor.DecryptCompressed(data, nil)
	} else {
		plaintext, err = s.encryptor.Decrypt(data, nil)
	}
	if err != nil {
		return 0, s.compress, err
	}
	if _, err := w.Write(plaintext); err != nil {
		return 0, s.compress, fmt.Errorf("failed to write plaintext for %s: %w", name, err)
	}
	return uint64(len(plaintext)), s.compress, nil
}

// Exists reports whether an object named name is present in storage.
func (s *SecureFileOps) Exists(name string) bool {
	return ObjectExists(s.root, name)
}

// DeleteFile removes the object and its sidecar. Deleting a missing
// object succeeds quietly; a present object that cannot be removed is an
// error.
func (s *SecureFileOps) DeleteFile(name string) error {
	existed := ObjectExists(s.root, name)
	if !existed {
		s.log.WithField("file", name).Warn("file not found during delete")
	}
	if err := DeleteObject(s.root, name); err != nil {
		return err
	}
	if existed {
		s.log.WithField("file", name).Info("file deleted")
	}
	return nil
}

// ListFiles returns one FileInfo per stored object, sorted by name.
func (s *SecureFileOps) ListFiles() ([]FileInfo, error) {
	return ListObjects(s.root)
}

// ObjectExists reports whether an object named name is present under
// root. Probe failures count as absence. It needs no key material, so
// callers can check storage without touching the master key.
func ObjectExists(root, name string) bool {
	_, err := os.Stat(filepath.Join(root, name))
	return err == nil
}

// DeleteObject removes the object named name and its sidecar from root.
// A missing object is not an error; a present object that cannot be
// removed is. Sidecar removal is best-effort.
func DeleteObject(root, name string) error {
	path := filepath.Join(root, name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to delete encrypted file %s: %w", name, err)
	}

	// The sidecar may legitimately be absent.
	_ = os.Remove(metadataPath(path))
	return nil
}

// ListObjects returns one FileInfo per stored object under root, sorted
// by name. Sidecars and nested directories are excluded. A missing
// storage root yields an empty listing, since a store nobody wrote to is
// empty rather than broken. Like ObjectExists, it needs no key material.
func ListObjects(root string) ([]FileInfo, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read storage directory %s: %w", root, err)
	}

	// os.ReadDir returns entries sorted by filename.
	var files []FileInfo
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) == ".json" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", entry.Name(), err)
		}
		path := filepath.Join(root, entry.Name())
		files = append(files, FileInfo{
			Name:        entry.Name(),
			Size:        uint64(info.Size()),
			HasMetadata: fileExists(metadataPath(path)),
		})
	}

	return files, nil
}

// GetMetadata loads the metadata sidecar recorded for name.
//
// Returns ErrMetadataNotFound if the sidecar cannot be read and
// ErrMalformedMetadata if it cannot be parsed.
func (s *SecureFileOps) GetMetadata(name string) (*FileMetadata, error) {
	data, err := os.ReadFile(metadataPath(s.objectPath(name)))
	if err != nil {
		return nil, fmt.Errorf("%w: %s", sferrors.ErrMetadataNotFound, name)
	}

	var meta FileMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", sferrors.ErrMalformedMetadata, name, err)
	}
	return &meta, nil
}

// readObject loads the raw stored bytes for name, mapping a missing
// object to ErrFileNotFound.
func (s *SecureFileOps) readObject(name string) ([]byte, error) {
	data, err := os.ReadFile(s.objectPath(name))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", sferrors.ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("failed to read encrypted file %s: %w", name, err)
	}
	return data, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
