package sorting

import "slices"

// EntryKind discriminates directories from every other entry.
type EntryKind int

const (
	KindFile EntryKind = iota
	KindDirectory
)

// Entry is a listed path and its kind.
type Entry struct {
	Name string
	Path string
	Kind EntryKind
}

// IsDir reports whether the entry is a directory.
func (entry Entry) IsDir() bool {
	return entry.Kind == KindDirectory
}

type keyedEntry struct {
	entry    Entry
	priority Priority
	key      SortKey
}

// SortEntries returns files followed by directories. Directories are ordered by natural key only;
// files by priority group, then extension within the catch-all group, then natural key.
// Equal entries keep their input order.
func SortEntries(entries []Entry) []Entry {
	var files, directories []keyedEntry
	for _, entry := range entries {
		keyed := keyedEntry{entry: entry, key: NaturalKey(entry.Name)}
		if entry.IsDir() {
			directories = append(directories, keyed)
			continue
		}
		keyed.priority = Classify(entry.Name)
		files = append(files, keyed)
	}

	slices.SortStableFunc(directories, func(left, right keyedEntry) int {
		return CompareNatural(left.key, right.key)
	})
	slices.SortStableFunc(files, func(left, right keyedEntry) int {
		if result := left.priority.Compare(right.priority); result != 0 {
			return result
		}
		return CompareNatural(left.key, right.key)
	})

	sorted := make([]Entry, 0, len(entries))
	for _, keyed := range files {
		sorted = append(sorted, keyed.entry)
	}
	for _, keyed := range directories {
		sorted = append(sorted, keyed.entry)
	}
	return sorted
}
