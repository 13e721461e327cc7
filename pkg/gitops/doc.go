/*
Package gitops renders deployments into a git repository in response to events.

The processor is the single consumer of the "gitops" queue. For every
deployment event it materializes the deployment's effective template and
resolved config under a directory derived from the deployment id, commits,
and pushes. The repository is the declarative hand-off point: whatever
applies manifests to clusters watches the repository, never Fabriq itself.
Events for the other model kinds need no repository change, since their
state reaches the repository through the deployments that reference them.

# Architecture

	┌──────────────────── GITOPS PROCESSOR ────────────────────┐
	│                                                           │
	│  event queue ("gitops")                                   │
	│      │ Receive                                            │
	│      ▼                                                    │
	│  ┌──────────────────────────────────────┐                │
	│  │ Process: switch on model type         │                │
	│  │   Deployment Created/Updated ─► render│                │
	│  │   Deployment Deleted ─► remove dir    │                │
	│  │   everything else ─► log only         │                │
	│  └──────────────┬───────────────────────┘                │
	│                 ▼                                         │
	│  render: workload ─► effective template ─► clone         │
	│          template repo ─► copy files + config.yaml       │
	│                 │                                         │
	│                 ▼                                         │
	│  Repo.Commit ("Processed deployment event <op>")          │
	│  Repo.Push                                                │
	│                 │                                         │
	│                 ▼                                         │
	│  Delete event (ack) ── on success only                    │
	└───────────────────────────────────────────────────────────┘

# Repository Layout

Each deployment renders under

	deployments/<team id>/<workload id>/<deployment id>/

with the template's files copied byte for byte and the deployment-scope
config resolved through the api written alongside as config.yaml. The path
derives from the deployment id alone, so a deletion removes the directory
without consulting the workload, which may already be gone.

# The Repo Interface

Repo is a writable checkout: WriteFile, ReadFile, ListFiles, RemoveDir,
Commit, Push, Close. GitRepo implements it over go-git with a clone in a
temporary directory, authenticating with an in-memory SSH key when one is
configured. MemoryRepo implements it in memory for tests; its Commit
compares the tree against the last commit the way git status does, so a
byte-identical re-render commits nothing there either.

# Failure Handling

Transient errors (api reads, clone, push) leave the event unacknowledged
for redelivery. Rendering is deterministic, so a replay rebuilds the same
tree, skips the commit, and retries only what failed; the push runs even on
a clean tree so a commit whose push was lost still reaches the remote.

A FatalEventError (unknown model or event type, malformed deployment id,
envelope without snapshots) stops the consumer loop for operator
intervention.

# Usage

	repo, err := gitops.Clone(gitops.Config{
		URL:        cfg.GitOpsRepoURL,
		Branch:     cfg.GitOpsRepoBranch,
		PrivateKey: sshKey,
	})
	if err != nil {
		return err
	}
	defer repo.Close()

	processor := gitops.NewProcessor(repo, func(cfg gitops.Config) (gitops.Repo, error) {
		return gitops.Clone(cfg)
	}, apiClient, eventStream, sshKey, stream.GitOpsConsumerID)
	processor.Start()
	defer processor.Stop()

# Integration Points

This package integrates with:

  - pkg/stream: receives from and acknowledges the gitops queue
  - pkg/client: reads workloads, templates, and resolved config through
    the api server's DataPlane surface
  - pkg/metrics: processed-event counts per consumer
  - go-git: clone, commit, and push for both the gitops repository and
    template checkouts

# See Also

  - pkg/stream for delivery semantics
  - pkg/services for the config resolution the rendering embeds
  - pkg/reconciler for the sibling consumer of the same event fan-out
*/
package gitops
