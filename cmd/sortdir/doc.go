// Command sortdir copies the files of a single directory into category
// subfolders based on file extension. It never recurses, never moves or
// deletes originals, and skips symlinks. Run with --dry-run to preview.
package main
