package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/louisbranch/uemcp/internal/history"
)

type executedCall struct {
	commandType string
	params      map[string]any
}

// fakeExecutor scripts listener responses per command type and records
// every call for assertion.
type fakeExecutor struct {
	responses map[string]map[string]any
	errs      map[string]error
	calls     []executedCall
	status    map[string]any
	statusErr error
}

func (f *fakeExecutor) Execute(_ context.Context, commandType string, params map[string]any) (map[string]any, error) {
	f.calls = append(f.calls, executedCall{commandType: commandType, params: params})
	if err, ok := f.errs[commandType]; ok {
		return nil, err
	}
	if response, ok := f.responses[commandType]; ok {
		return response, nil
	}
	return map[string]any{"success": true}, nil
}

func (f *fakeExecutor) Status(context.Context) (map[string]any, error) {
	if f.statusErr != nil {
		return nil, f.statusErr
	}
	return f.status, nil
}

func (f *fakeExecutor) lastCall(t *testing.T) executedCall {
	t.Helper()
	if len(f.calls) == 0 {
		t.Fatal("expected at least one executor call")
	}
	return f.calls[len(f.calls)-1]
}

func TestActorSpawnRecordsAndCapturesUndo(t *testing.T) {
	executor := &fakeExecutor{
		responses: map[string]map[string]any{
			"actor.spawn": {"success": true, "actorName": "Wall_01", "location": []any{100.0, 0.0, 0.0}},
		},
	}
	manager := history.New(10)

	handler := ActorSpawnHandler(executor, manager)
	_, result, err := handler(context.Background(), nil, ActorSpawnInput{
		AssetPath: "/Game/Walls/SM_Wall01",
		Location:  []float64{100, 0, 0},
	})
	if err != nil {
		t.Fatalf("spawn: %v", err)
	}
	if result.ActorName != "Wall_01" {
		t.Fatalf("expected spawned actor name, got %q", result.ActorName)
	}
	if result.HistoryID == "" {
		t.Fatal("expected history id in result")
	}

	record, ok := manager.Undoable()
	if !ok {
		t.Fatal("expected spawn on the timeline")
	}
	if record.ToolName != "actor_spawn" {
		t.Fatalf("expected actor_spawn record, got %q", record.ToolName)
	}
	creation, ok := record.UndoData.(history.UndoCreation)
	if !ok {
		t.Fatalf("expected creation undo data, got %T", record.UndoData)
	}
	if creation.ActorName != "Wall_01" {
		t.Fatalf("expected created actor captured, got %q", creation.ActorName)
	}
	if record.Result["actorName"] != "Wall_01" {
		t.Fatalf("expected listener result attached, got %+v", record.Result)
	}
}

func TestActorSpawnFailureStillRecords(t *testing.T) {
	executor := &fakeExecutor{
		errs: map[string]error{"actor.spawn": errors.New("asset not found")},
	}
	manager := history.New(10)

	handler := ActorSpawnHandler(executor, manager)
	if _, _, err := handler(context.Background(), nil, ActorSpawnInput{AssetPath: "/Game/Missing"}); err == nil {
		t.Fatal("expected error from failed spawn")
	}

	// The record exists but carries no undo data.
	record, ok := manager.Undoable()
	if !ok {
		t.Fatal("expected failed spawn recorded")
	}
	if record.UndoData != nil {
		t.Fatalf("expected no undo data, got %T", record.UndoData)
	}
}

func TestActorDeleteCapturesSnapshot(t *testing.T) {
	executor := &fakeExecutor{
		responses: map[string]map[string]any{
			"actor.get_state": {
				"success":    true,
				"actor_name": "Wall_01",
				"asset_path": "/Game/Walls/SM_Wall01",
				"location":   []any{100.0, 0.0, 0.0},
				"rotation":   []any{0.0, 0.0, 90.0},
				"scale":      []any{1.0, 1.0, 1.0},
				"folder":     "Building/Walls",
			},
			"actor.delete": {"success": true},
		},
	}
	manager := history.New(10)

	handler := ActorDeleteHandler(executor, manager)
	_, _, err := handler(context.Background(), nil, ActorDeleteInput{ActorName: "Wall_01"})
	if err != nil {
		t.Fatalf("delete: %v", err)
	}

	record, _ := manager.Undoable()
	deletion, ok := record.UndoData.(history.UndoDeletion)
	if !ok {
		t.Fatalf("expected deletion undo data, got %T", record.UndoData)
	}
	if deletion.Prior.AssetPath != "/Game/Walls/SM_Wall01" {
		t.Fatalf("expected asset path captured, got %q", deletion.Prior.AssetPath)
	}
	if deletion.Prior.Folder != "Building/Walls" {
		t.Fatalf("expected folder captured, got %q", deletion.Prior.Folder)
	}
	if len(deletion.Prior.Location) != 3 || deletion.Prior.Location[0] != 100 {
		t.Fatalf("expected location captured, got %v", deletion.Prior.Location)
	}
}

func TestActorDeleteProceedsWithoutSnapshot(t *testing.T) {
	executor := &fakeExecutor{
		errs: map[string]error{"actor.get_state": errors.New("listener busy")},
		responses: map[string]map[string]any{
			"actor.delete": {"success": true},
		},
	}
	manager := history.New(10)

	handler := ActorDeleteHandler(executor, manager)
	if _, _, err := handler(context.Background(), nil, ActorDeleteInput{ActorName: "Wall_01"}); err != nil {
		t.Fatalf("delete should proceed without snapshot: %v", err)
	}
	record, _ := manager.Undoable()
	if record.UndoData != nil {
		t.Fatalf("expected no undo data after capture failure, got %T", record.UndoData)
	}
}

func TestActorModifyCapturesOnlyTouchedFields(t *testing.T) {
	executor := &fakeExecutor{
		responses: map[string]map[string]any{
			"actor.get_state": {
				"success":  true,
				"location": []any{0.0, 0.0, 0.0},
				"rotation": []any{0.0, 0.0, 0.0},
				"scale":    []any{1.0, 1.0, 1.0},
				"folder":   "Old/Folder",
			},
			"actor.modify": {"success": true},
		},
	}
	manager := history.New(10)

	handler := ActorModifyHandler(executor, manager)
	_, _, err := handler(context.Background(), nil, ActorModifyInput{
		ActorName: "Wall_01",
		Location:  []float64{50, 0, 0},
	})
	if err != nil {
		t.Fatalf("modify: %v", err)
	}

	record, _ := manager.Undoable()
	mutation, ok := record.UndoData.(history.UndoMutation)
	if !ok {
		t.Fatalf("expected mutation undo data, got %T", record.UndoData)
	}
	if mutation.Prior.Location == nil {
		t.Fatal("expected prior location captured")
	}
	if mutation.Prior.Rotation != nil || mutation.Prior.Scale != nil || mutation.Prior.Folder != "" {
		t.Fatalf("expected untouched fields omitted, got %+v", mutation.Prior)
	}
}

func TestActorModifyRequiresAField(t *testing.T) {
	handler := ActorModifyHandler(&fakeExecutor{}, history.New(10))
	if _, _, err := handler(context.Background(), nil, ActorModifyInput{ActorName: "Wall_01"}); err == nil {
		t.Fatal("expected error when no field supplied")
	}
}

func TestMaterialApplyCapturesPriorMaterial(t *testing.T) {
	executor := &fakeExecutor{
		responses: map[string]map[string]any{
			"material.apply": {"success": true, "previousMaterial": "/Game/Materials/M_Old"},
		},
	}
	manager := history.New(10)

	handler := MaterialApplyHandler(executor, manager)
	_, _, err := handler(context.Background(), nil, MaterialApplyInput{
		ActorName:    "Wall_01",
		MaterialPath: "/Game/Materials/M_New",
		SlotIndex:    1,
	})
	if err != nil {
		t.Fatalf("material apply: %v", err)
	}

	record, _ := manager.Undoable()
	change, ok := record.UndoData.(history.UndoMaterialChange)
	if !ok {
		t.Fatalf("expected material change undo data, got %T", record.UndoData)
	}
	if change.PriorMaterial != "/Game/Materials/M_Old" || change.SlotIndex != 1 {
		t.Fatalf("expected prior material and slot, got %+v", change)
	}
}

func TestUndoCreationDeletesActor(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	id := manager.Record("actor_spawn", map[string]any{"assetPath": "/Game/W"}, history.Options{})
	manager.SetUndoData(id, history.UndoCreation{ActorName: "Wall_01"})

	handler := UndoHandler(executor, manager)
	_, result, err := handler(context.Background(), nil, UndoInput{})
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !result.Undone || !result.Reversed {
		t.Fatalf("expected reversal, got %+v", result)
	}
	call := executor.lastCall(t)
	if call.commandType != "actor.delete" {
		t.Fatalf("expected actor.delete issued, got %q", call.commandType)
	}
	if call.params["actorName"] != "Wall_01" {
		t.Fatalf("expected created actor deleted, got %v", call.params)
	}
	if status := manager.Status(); status.CanUndo {
		t.Fatal("expected cursor stepped back")
	}
}

func TestUndoDeletionRespawnsActor(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	id := manager.Record("actor_delete", nil, history.Options{})
	manager.SetUndoData(id, history.UndoDeletion{Prior: history.ActorSnapshot{
		ActorName: "Wall_01",
		AssetPath: "/Game/Walls/SM_Wall01",
		Location:  []float64{100, 0, 0},
		Folder:    "Building/Walls",
	}})

	handler := UndoHandler(executor, manager)
	if _, _, err := handler(context.Background(), nil, UndoInput{}); err != nil {
		t.Fatalf("undo: %v", err)
	}
	call := executor.lastCall(t)
	if call.commandType != "actor.spawn" {
		t.Fatalf("expected actor.spawn issued, got %q", call.commandType)
	}
	if call.params["assetPath"] != "/Game/Walls/SM_Wall01" || call.params["name"] != "Wall_01" {
		t.Fatalf("expected snapshot respawned, got %v", call.params)
	}
	if call.params["folder"] != "Building/Walls" {
		t.Fatalf("expected folder restored, got %v", call.params)
	}
}

func TestUndoMutationRestoresPriorState(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	id := manager.Record("actor_modify", nil, history.Options{})
	manager.SetUndoData(id, history.UndoMutation{
		ActorName: "Wall_01",
		Prior:     history.StateDelta{Location: []float64{0, 0, 0}},
	})

	handler := UndoHandler(executor, manager)
	if _, _, err := handler(context.Background(), nil, UndoInput{}); err != nil {
		t.Fatalf("undo: %v", err)
	}
	call := executor.lastCall(t)
	if call.commandType != "actor.modify" {
		t.Fatalf("expected actor.modify issued, got %q", call.commandType)
	}
	if _, ok := call.params["location"]; !ok {
		t.Fatalf("expected prior location in params, got %v", call.params)
	}
	if _, ok := call.params["rotation"]; ok {
		t.Fatalf("expected untouched fields omitted, got %v", call.params)
	}
}

func TestUndoMaterialChangeRestoresMaterial(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	id := manager.Record("material_apply", nil, history.Options{})
	manager.SetUndoData(id, history.UndoMaterialChange{
		ActorName:     "Wall_01",
		PriorMaterial: "/Game/Materials/M_Old",
		SlotIndex:     2,
	})

	handler := UndoHandler(executor, manager)
	if _, _, err := handler(context.Background(), nil, UndoInput{}); err != nil {
		t.Fatalf("undo: %v", err)
	}
	call := executor.lastCall(t)
	if call.commandType != "material.apply" {
		t.Fatalf("expected material.apply issued, got %q", call.commandType)
	}
	if call.params["materialPath"] != "/Game/Materials/M_Old" {
		t.Fatalf("expected prior material reapplied, got %v", call.params)
	}
}

func TestUndoWithoutDataStepsOver(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	manager.Record("actor_spawn", nil, history.Options{})

	handler := UndoHandler(executor, manager)
	_, result, err := handler(context.Background(), nil, UndoInput{})
	if err != nil {
		t.Fatalf("undo: %v", err)
	}
	if !result.Undone || result.Reversed {
		t.Fatalf("expected step-over without reversal, got %+v", result)
	}
	if len(executor.calls) != 0 {
		t.Fatalf("expected no editor command, got %v", executor.calls)
	}
	if manager.Status().CanUndo {
		t.Fatal("expected cursor stepped back")
	}
}

func TestUndoExecutorFailureKeepsCursor(t *testing.T) {
	executor := &fakeExecutor{
		errs: map[string]error{"actor.delete": errors.New("listener offline")},
	}
	manager := history.New(10)
	id := manager.Record("actor_spawn", nil, history.Options{})
	manager.SetUndoData(id, history.UndoCreation{ActorName: "Wall_01"})

	handler := UndoHandler(executor, manager)
	if _, _, err := handler(context.Background(), nil, UndoInput{}); err == nil {
		t.Fatal("expected error from failed reversal")
	}
	if !manager.Status().CanUndo {
		t.Fatal("expected cursor unchanged after failed reversal")
	}
}

func TestUndoEmptyTimeline(t *testing.T) {
	handler := UndoHandler(&fakeExecutor{}, history.New(10))
	_, result, err := handler(context.Background(), nil, UndoInput{})
	if err != nil {
		t.Fatalf("undo on empty timeline should not error: %v", err)
	}
	if result.Undone {
		t.Fatalf("expected nothing undone, got %+v", result)
	}
}

func TestRedoReplaysRecordedArgs(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	manager.Record("actor_spawn", map[string]any{"assetPath": "/Game/W", "name": "Wall_01"}, history.Options{})
	manager.MarkUndone()

	handler := RedoHandler(executor, manager)
	_, result, err := handler(context.Background(), nil, RedoInput{})
	if err != nil {
		t.Fatalf("redo: %v", err)
	}
	if !result.Redone {
		t.Fatalf("expected redo, got %+v", result)
	}
	call := executor.lastCall(t)
	if call.commandType != "actor.spawn" {
		t.Fatalf("expected actor.spawn replayed, got %q", call.commandType)
	}
	if call.params["name"] != "Wall_01" {
		t.Fatalf("expected recorded args replayed, got %v", call.params)
	}
	if !manager.Status().CanUndo {
		t.Fatal("expected cursor stepped forward")
	}
}

func TestRedoEmpty(t *testing.T) {
	handler := RedoHandler(&fakeExecutor{}, history.New(10))
	_, result, err := handler(context.Background(), nil, RedoInput{})
	if err != nil {
		t.Fatalf("redo on empty timeline should not error: %v", err)
	}
	if result.Redone {
		t.Fatalf("expected nothing redone, got %+v", result)
	}
}

func TestCheckpointRestoreWalksBack(t *testing.T) {
	executor := &fakeExecutor{}
	manager := history.New(10)
	manager.Record("actor_spawn", nil, history.Options{Description: "Spawn base"})
	checkpoint := CheckpointCreateHandler(manager)
	if _, _, err := checkpoint(context.Background(), nil, CheckpointCreateInput{Name: "base"}); err != nil {
		t.Fatalf("checkpoint create: %v", err)
	}

	for i := 0; i < 3; i++ {
		id := manager.Record("actor_spawn", nil, history.Options{})
		manager.SetUndoData(id, history.UndoCreation{ActorName: fmt.Sprintf("Wall_%02d", i)})
	}

	restore := CheckpointRestoreHandler(executor, manager)
	_, result, err := restore(context.Background(), nil, CheckpointRestoreInput{Name: "base"})
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if result.OperationsUndone != 3 {
		t.Fatalf("expected 3 operations undone, got %d", result.OperationsUndone)
	}
	if len(executor.calls) != 3 {
		t.Fatalf("expected 3 delete commands, got %d", len(executor.calls))
	}
	// Newest first.
	if executor.calls[0].params["actorName"] != "Wall_02" {
		t.Fatalf("expected newest reversed first, got %v", executor.calls[0].params)
	}
	if idx := manager.Status().CurrentIndex; idx != 0 {
		t.Fatalf("expected cursor back at checkpoint, got %d", idx)
	}
}

func TestCheckpointRestoreUnknownName(t *testing.T) {
	restore := CheckpointRestoreHandler(&fakeExecutor{}, history.New(10))
	if _, _, err := restore(context.Background(), nil, CheckpointRestoreInput{Name: "missing"}); err == nil {
		t.Fatal("expected error for unknown checkpoint")
	}
}

func TestHistoryListAndStatus(t *testing.T) {
	manager := history.New(10)
	manager.Record("actor_spawn", nil, history.Options{Description: "Spawn A"})
	manager.Record("actor_spawn", nil, history.Options{Description: "Spawn B"})
	manager.MarkUndone()

	list := HistoryListHandler(manager)
	_, listing, err := list(context.Background(), nil, HistoryListInput{})
	if err != nil {
		t.Fatalf("history list: %v", err)
	}
	if len(listing.Undoable) != 1 || listing.Undoable[0].Description != "Spawn A" {
		t.Fatalf("expected [Spawn A] undoable, got %+v", listing.Undoable)
	}
	if len(listing.Redoable) != 1 || listing.Redoable[0].Description != "Spawn B" {
		t.Fatalf("expected [Spawn B] redoable, got %+v", listing.Redoable)
	}

	status := HistoryStatusHandler(manager)
	_, statusResult, err := status(context.Background(), nil, HistoryStatusInput{})
	if err != nil {
		t.Fatalf("history status: %v", err)
	}
	if statusResult.TotalOperations != 2 || statusResult.CurrentIndex != 0 {
		t.Fatalf("expected 2 ops cursor 0, got %+v", statusResult)
	}
	if !statusResult.CanUndo || !statusResult.CanRedo {
		t.Fatalf("expected undo and redo available, got %+v", statusResult)
	}
}

func TestHistoryClearHandler(t *testing.T) {
	manager := history.New(10)
	manager.Record("actor_spawn", nil, history.Options{})
	clear := HistoryClearHandler(manager)
	if _, _, err := clear(context.Background(), nil, HistoryClearInput{}); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if status := manager.Status(); status.TotalOperations != 0 {
		t.Fatalf("expected empty timeline, got %+v", status)
	}
}

func TestTestConnectionHandler(t *testing.T) {
	executor := &fakeExecutor{status: map[string]any{"status": "online", "version": "0.7.0"}}
	handler := TestConnectionHandler(executor, "http://localhost:8765")
	_, result, err := handler(context.Background(), nil, TestConnectionInput{})
	if err != nil {
		t.Fatalf("test connection: %v", err)
	}
	if !result.Connected || result.Version != "0.7.0" {
		t.Fatalf("expected connected with version, got %+v", result)
	}

	executor.statusErr = errors.New("connection refused")
	_, result, err = handler(context.Background(), nil, TestConnectionInput{})
	if err != nil {
		t.Fatalf("unreachable listener should not be a tool error: %v", err)
	}
	if result.Connected {
		t.Fatalf("expected disconnected result, got %+v", result)
	}
}

func TestPythonProxyRecordsAsCustom(t *testing.T) {
	executor := &fakeExecutor{
		responses: map[string]map[string]any{
			"python.execute": {"success": true, "output": "hello"},
		},
	}
	manager := history.New(10)

	handler := PythonProxyHandler(executor, manager)
	_, result, err := handler(context.Background(), nil, PythonProxyInput{Code: "print('hello')"})
	if err != nil {
		t.Fatalf("python proxy: %v", err)
	}
	if result.Output != "hello" {
		t.Fatalf("expected captured output, got %+v", result)
	}
	record, _ := manager.Undoable()
	if _, ok := record.UndoData.(history.UndoCustom); !ok {
		t.Fatalf("expected custom undo data, got %T", record.UndoData)
	}
}
