package r2cli

// PipeFlag puts radare2 into pipe mode: no banner, NUL-terminated command
// responses, clean exit on "q!".
const PipeFlag = "-q0"

// QuitCommand asks a spawned radare2 process to exit without saving.
const QuitCommand = "q!"

// BuildArgs constructs the radare2 argument vector for pipe mode:
// the pipe flag, then any extra arguments, then the analysis target.
func BuildArgs(extra []string, target string) []string {
	args := make([]string, 0, len(extra)+2)
	args = append(args, PipeFlag)
	args = append(args, extra...)
	args = append(args, target)

	return args
}
