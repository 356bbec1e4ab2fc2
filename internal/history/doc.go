// Package history persists finished organize runs in a SQLite database under
// the log directory. Recording is best-effort: the organize run itself never
// fails because history could not be written. The scan root is never touched;
// dry runs therefore stay side-effect free from the operator's perspective.
package history
