package script

import (
	"bufio"
	"io"
	"strings"
)

// Command is a single parsed statement.
type Command struct {
	Name string
	Args []string
	// Line is the 1-based source line.
	Line int
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

// Parse splits src into commands. Blank statements and comments are skipped.
func Parse(src io.Reader) ([]Command, error) {
	var cmds []Command

	sc := bufio.NewScanner(src)
	line := 0
	for sc.Scan() {
		line++
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		for _, stmt := range strings.Split(text, ";") {
			fields := strings.Fields(stmt)
			if len(fields) == 0 {
				continue
			}
			cmds = append(cmds, Command{
				Name: strings.ToLower(fields[0]),
				Args: fields[1:],
				Line: line,
			})
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return cmds, nil
}
