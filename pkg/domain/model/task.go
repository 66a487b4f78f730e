package model

// TaskKind distinguishes how a task is presented
type TaskKind int

const (
	// TaskKindLabel is a free-form instruction
	TaskKindLabel TaskKind = iota
	// TaskKindShell is a command to run in a shell
	TaskKindShell
)

// Task is a single step of a post-download task group
type Task struct {
	Kind TaskKind
	Text string
}

// Label creates a plain instruction task
func Label(text string) Task {
	return Task{Kind: TaskKindLabel, Text: text}
}

// Shell creates a shell command task
func Shell(command string) Task {
	return Task{Kind: TaskKindShell, Text: command}
}

// IsShell reports whether the task is a shell command
func (x Task) IsShell() bool {
	return x.Kind == TaskKindShell
}

// TaskGroup is a titled, ordered list of tasks. A group without tasks does
// not apply to the project.
type TaskGroup struct {
	Title string
	Tasks []Task
}

// IsEmpty reports whether the group has no task. A nil group is empty.
func (x *TaskGroup) IsEmpty() bool {
	return x == nil || len(x.Tasks) == 0
}
