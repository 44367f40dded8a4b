// Copyright 2025 NetApp, Inc. All Rights Reserved.

package logging

const (
	workflowCategorySeparator = "="

	CategoryCore    = WorkflowCategory("core")
	CategoryVolume  = WorkflowCategory("volume")
	CategoryStorage = WorkflowCategory("storage_group")
	CategoryREST    = WorkflowCategory("rest")
	CategoryPlugin  = WorkflowCategory("plugin")
	CategoryNone    = WorkflowCategory("none")

	OpBootstrap  = WorkflowOperation("bootstrap")
	OpVersion    = WorkflowOperation("version")
	OpActivate   = WorkflowOperation("activate")
	OpDeactivate = WorkflowOperation("deactivate")
	OpCreate     = WorkflowOperation("create")
	OpDelete     = WorkflowOperation("delete")
	OpAttach     = WorkflowOperation("attach")
	OpDetach     = WorkflowOperation("detach")
	OpGet        = WorkflowOperation("get")
	OpGetPath    = WorkflowOperation("get_path")
	OpList       = WorkflowOperation("list")
	OpTrace      = WorkflowOperation("trace")
	OpInit       = WorkflowOperation("init")
	OpNone       = WorkflowOperation("none")
)

var (
	WorkflowCoreBootstrap = Workflow{CategoryCore, OpBootstrap}
	WorkflowCoreVersion   = Workflow{CategoryCore, OpVersion}

	WorkflowVolumeCreate  = Workflow{CategoryVolume, OpCreate}
	WorkflowVolumeDelete  = Workflow{CategoryVolume, OpDelete}
	WorkflowVolumeAttach  = Workflow{CategoryVolume, OpAttach}
	WorkflowVolumeDetach  = Workflow{CategoryVolume, OpDetach}
	WorkflowVolumeGet     = Workflow{CategoryVolume, OpGet}
	WorkflowVolumeGetPath = Workflow{CategoryVolume, OpGetPath}
	WorkflowVolumeList    = Workflow{CategoryVolume, OpList}

	WorkflowStorageGroupGet = Workflow{CategoryStorage, OpGet}

	WorkflowRESTTrace = Workflow{CategoryREST, OpTrace}

	WorkflowPluginCreate     = Workflow{CategoryPlugin, OpInit}
	WorkflowPluginActivate   = Workflow{CategoryPlugin, OpActivate}
	WorkflowPluginDeactivate = Workflow{CategoryPlugin, OpDeactivate}

	WorkflowNone = Workflow{CategoryNone, OpNone}
)
