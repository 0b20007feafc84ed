package bpmn

// ActivityInterface is implemented by all task kinds.
type ActivityInterface interface {
	FlowNodeInterface
	GetTask() *Task
}

var _ ActivityInterface = (*Task)(nil)

type Task struct {
	FlowNode
	IsForCompensation bool
	Default           string
}

func NewTask(id, name string) *Task {
	t := &Task{}
	t.Id = id
	t.Name = name
	return t
}

func (t *Task) GetKind() Kind { return TaskKind }

func (t *Task) GetTask() *Task { return t }

type ServiceTask struct {
	Task
	Implementation string
}

func NewServiceTask(id, name string) *ServiceTask {
	t := &ServiceTask{}
	t.Id = id
	t.Name = name
	return t
}

func (t *ServiceTask) GetKind() Kind { return ServiceTaskKind }

type UserTask struct {
	Task
}

func (t *UserTask) GetKind() Kind { return UserTaskKind }

type ScriptTask struct {
	Task
	ScriptFormat string
	Script       string
}

func (t *ScriptTask) GetKind() Kind { return ScriptTaskKind }

type ManualTask struct {
	Task
}

func (t *ManualTask) GetKind() Kind { return ManualTaskKind }
