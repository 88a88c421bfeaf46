package orion

import (
	"fmt"
	"log/slog"
)

// Handle aborts the program if err is not nil. The description is
// formatted using the given args and prefixed to the error.
func Handle(err error, desc string, args ...any) {
	if err != nil {
		text := fmt.Sprintf(desc, args...)
		slog.Error(text, slog.Any("err", err))
		panic(text + ": " + err.Error())
	}
}
