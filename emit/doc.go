// Package emit writes rendered manifests to disk.
//
// [Generate] is the one-shot path: load a manifest, render it, and write the
// output file it names. [Watch] keeps a manifest's output up to date,
// regenerating whenever the manifest file changes. Watching uses fsnotify
// with a polling fallback for filesystems that do not support it.
//
// Output paths in a manifest resolve relative to the manifest file's
// directory, so a manifest can be generated from any working directory.
package emit
