// Package fileutil provides the copy primitives used when placing files into
// category directories. Destinations are created exclusively, so a copy can
// never clobber a file that appeared after collision probing.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"io"
	"os"
)

// CopyFile streams src into a freshly created dst (0o644). The destination
// must not already exist; a partial file left by a failed copy is removed.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}
	return nil
}

// CopyFileVerified copies src to dst like CopyFile, then re-reads the
// destination from disk and compares its size and SHA256 digest against what
// was streamed out of the source. A short or corrupted destination is
// removed before the error is returned.
func CopyFileVerified(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o644)
	if err != nil {
		return err
	}

	srcHasher := sha256.New()
	written, err := io.Copy(out, io.TeeReader(in, srcHasher))
	if err != nil {
		_ = out.Close()
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	check, err := os.Open(dst)
	if err != nil {
		return err
	}
	defer check.Close()

	dstHasher := sha256.New()
	read, err := io.Copy(dstHasher, check)
	if err != nil {
		_ = os.Remove(dst)
		return err
	}

	if read != written {
		_ = os.Remove(dst)
		return fmt.Errorf("verify %s: wrote %d bytes, read back %d", dst, written, read)
	}
	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("verify %s: digest mismatch after copy", dst)
	}
	return nil
}
