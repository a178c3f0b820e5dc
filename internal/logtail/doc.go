// Package logtail reads the end of the prais log file for `prais logs`.
//
// Read seeks backwards from the end of the file in fixed-size chunks, so
// showing the last few hundred lines of a large log does not scan the whole
// file. A missing log returns no lines and no error: a fresh install has
// nothing to show yet.
//
// LineLevel and AtLeast understand both slog handlers the logging package
// can install (text `level=WARN` and JSON `"level":"WARN"`). Unleveled
// lines inherit the level of the line before them.
//
//	lines, err := logtail.Read(path, 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.AtLeast(lines, slog.LevelWarn) {
//		fmt.Println(line)
//	}
package logtail
