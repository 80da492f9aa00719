// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/sahlen/vinkallaren/gen/ent/labelphoto"
	"github.com/sahlen/vinkallaren/gen/ent/predicate"
	"github.com/sahlen/vinkallaren/gen/ent/scanjob"
	"github.com/sahlen/vinkallaren/gen/ent/storagelocation"
	"github.com/sahlen/vinkallaren/gen/ent/tastingnote"
	"github.com/sahlen/vinkallaren/gen/ent/wine"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeLabelPhoto      = "LabelPhoto"
	TypeScanJob         = "ScanJob"
	TypeStorageLocation = "StorageLocation"
	TypeTastingNote     = "TastingNote"
	TypeWine            = "Wine"
)

// LabelPhotoMutation represents an operation that mutates the LabelPhoto nodes in the graph.
type LabelPhotoMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	source_path   *string
	content_hash  *string
	filename      *string
	file_ext      *string
	file_size     *int
	addfile_size  *int
	uploaded_at   *time.Time
	clearedFields map[string]struct{}
	jobs          map[uuid.UUID]struct{}
	removedjobs   map[uuid.UUID]struct{}
	clearedjobs   bool
	done          bool
	oldValue      func(context.Context) (*LabelPhoto, error)
	predicates    []predicate.LabelPhoto
}

var _ ent.Mutation = (*LabelPhotoMutation)(nil)

// labelphotoOption allows management of the mutation configuration using functional options.
type labelphotoOption func(*LabelPhotoMutation)

// newLabelPhotoMutation creates new mutation for the LabelPhoto entity.
func newLabelPhotoMutation(c config, op Op, opts ...labelphotoOption) *LabelPhotoMutation {
	m := &LabelPhotoMutation{
		config:        c,
		op:            op,
		typ:           TypeLabelPhoto,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withLabelPhotoID sets the ID field of the mutation.
func withLabelPhotoID(id uuid.UUID) labelphotoOption {
	return func(m *LabelPhotoMutation) {
		var (
			err   error
			once  sync.Once
			value *LabelPhoto
		)
		m.oldValue = func(ctx context.Context) (*LabelPhoto, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().LabelPhoto.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withLabelPhoto sets the old LabelPhoto of the mutation.
func withLabelPhoto(node *LabelPhoto) labelphotoOption {
	return func(m *LabelPhotoMutation) {
		m.oldValue = func(context.Context) (*LabelPhoto, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m LabelPhotoMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m LabelPhotoMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of LabelPhoto entities.
func (m *LabelPhotoMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *LabelPhotoMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *LabelPhotoMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().LabelPhoto.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *LabelPhotoMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *LabelPhotoMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the LabelPhoto entity.
// If the LabelPhoto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelPhotoMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *LabelPhotoMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *LabelPhotoMutation) SetContentHash(s string) {
	m.content_hash = &s
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *LabelPhotoMutation) ContentHash() (r string, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the LabelPhoto entity.
// If the LabelPhoto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelPhotoMutation) OldContentHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *LabelPhotoMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *LabelPhotoMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *LabelPhotoMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the LabelPhoto entity.
// If the LabelPhoto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelPhotoMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *LabelPhotoMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *LabelPhotoMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *LabelPhotoMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the LabelPhoto entity.
// If the LabelPhoto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelPhotoMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *LabelPhotoMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetFileSize sets the "file_size" field.
func (m *LabelPhotoMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *LabelPhotoMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the LabelPhoto entity.
// If the LabelPhoto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelPhotoMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *LabelPhotoMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *LabelPhotoMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *LabelPhotoMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *LabelPhotoMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *LabelPhotoMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the LabelPhoto entity.
// If the LabelPhoto object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *LabelPhotoMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *LabelPhotoMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by ids.
func (m *LabelPhotoMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ScanJob entity.
func (m *LabelPhotoMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ScanJob entity was cleared.
func (m *LabelPhotoMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ScanJob entity by IDs.
func (m *LabelPhotoMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ScanJob entity.
func (m *LabelPhotoMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *LabelPhotoMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *LabelPhotoMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the LabelPhotoMutation builder.
func (m *LabelPhotoMutation) Where(ps ...predicate.LabelPhoto) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the LabelPhotoMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *LabelPhotoMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.LabelPhoto, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *LabelPhotoMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *LabelPhotoMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (LabelPhoto).
func (m *LabelPhotoMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *LabelPhotoMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.source_path != nil {
		fields = append(fields, labelphoto.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, labelphoto.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, labelphoto.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, labelphoto.FieldFileExt)
	}
	if m.file_size != nil {
		fields = append(fields, labelphoto.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, labelphoto.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *LabelPhotoMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case labelphoto.FieldSourcePath:
		return m.SourcePath()
	case labelphoto.FieldContentHash:
		return m.ContentHash()
	case labelphoto.FieldFilename:
		return m.Filename()
	case labelphoto.FieldFileExt:
		return m.FileExt()
	case labelphoto.FieldFileSize:
		return m.FileSize()
	case labelphoto.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *LabelPhotoMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case labelphoto.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case labelphoto.FieldContentHash:
		return m.OldContentHash(ctx)
	case labelphoto.FieldFilename:
		return m.OldFilename(ctx)
	case labelphoto.FieldFileExt:
		return m.OldFileExt(ctx)
	case labelphoto.FieldFileSize:
		return m.OldFileSize(ctx)
	case labelphoto.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown LabelPhoto field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelPhotoMutation) SetField(name string, value ent.Value) error {
	switch name {
	case labelphoto.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case labelphoto.FieldContentHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case labelphoto.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case labelphoto.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case labelphoto.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case labelphoto.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown LabelPhoto field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *LabelPhotoMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, labelphoto.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *LabelPhotoMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case labelphoto.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *LabelPhotoMutation) AddField(name string, value ent.Value) error {
	switch name {
	case labelphoto.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown LabelPhoto numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *LabelPhotoMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *LabelPhotoMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *LabelPhotoMutation) ClearField(name string) error {
	return fmt.Errorf("unknown LabelPhoto nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *LabelPhotoMutation) ResetField(name string) error {
	switch name {
	case labelphoto.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case labelphoto.FieldContentHash:
		m.ResetContentHash()
		return nil
	case labelphoto.FieldFilename:
		m.ResetFilename()
		return nil
	case labelphoto.FieldFileExt:
		m.ResetFileExt()
		return nil
	case labelphoto.FieldFileSize:
		m.ResetFileSize()
		return nil
	case labelphoto.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown LabelPhoto field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *LabelPhotoMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, labelphoto.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *LabelPhotoMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case labelphoto.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *LabelPhotoMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, labelphoto.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *LabelPhotoMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case labelphoto.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *LabelPhotoMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, labelphoto.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *LabelPhotoMutation) EdgeCleared(name string) bool {
	switch name {
	case labelphoto.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *LabelPhotoMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown LabelPhoto unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *LabelPhotoMutation) ResetEdge(name string) error {
	switch name {
	case labelphoto.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown LabelPhoto edge %s", name)
}

// ScanJobMutation represents an operation that mutates the ScanJob nodes in the graph.
type ScanJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	format                   *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	detection_confidence     *float32
	adddetection_confidence  *float32
	cropped_path             *string
	raw_text                 *string
	extracted_json           *json.RawMessage
	appendextracted_json     json.RawMessage
	extraction_confidence    *float32
	addextraction_confidence *float32
	needs_review             *bool
	clearedFields            map[string]struct{}
	photo                    *uuid.UUID
	clearedphoto             bool
	wine                     *uuid.UUID
	clearedwine              bool
	done                     bool
	oldValue                 func(context.Context) (*ScanJob, error)
	predicates               []predicate.ScanJob
}

var _ ent.Mutation = (*ScanJobMutation)(nil)

// scanjobOption allows management of the mutation configuration using functional options.
type scanjobOption func(*ScanJobMutation)

// newScanJobMutation creates new mutation for the ScanJob entity.
func newScanJobMutation(c config, op Op, opts ...scanjobOption) *ScanJobMutation {
	m := &ScanJobMutation{
		config:        c,
		op:            op,
		typ:           TypeScanJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withScanJobID sets the ID field of the mutation.
func withScanJobID(id uuid.UUID) scanjobOption {
	return func(m *ScanJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ScanJob
		)
		m.oldValue = func(ctx context.Context) (*ScanJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ScanJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withScanJob sets the old ScanJob of the mutation.
func withScanJob(node *ScanJob) scanjobOption {
	return func(m *ScanJobMutation) {
		m.oldValue = func(context.Context) (*ScanJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ScanJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ScanJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ScanJob entities.
func (m *ScanJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ScanJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ScanJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ScanJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPhotoID sets the "photo_id" field.
func (m *ScanJobMutation) SetPhotoID(u uuid.UUID) {
	m.photo = &u
}

// PhotoID returns the value of the "photo_id" field in the mutation.
func (m *ScanJobMutation) PhotoID() (r uuid.UUID, exists bool) {
	v := m.photo
	if v == nil {
		return
	}
	return *v, true
}

// OldPhotoID returns the old "photo_id" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldPhotoID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPhotoID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPhotoID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPhotoID: %w", err)
	}
	return oldValue.PhotoID, nil
}

// ResetPhotoID resets all changes to the "photo_id" field.
func (m *ScanJobMutation) ResetPhotoID() {
	m.photo = nil
}

// SetWineID sets the "wine_id" field.
func (m *ScanJobMutation) SetWineID(u uuid.UUID) {
	m.wine = &u
}

// WineID returns the value of the "wine_id" field in the mutation.
func (m *ScanJobMutation) WineID() (r uuid.UUID, exists bool) {
	v := m.wine
	if v == nil {
		return
	}
	return *v, true
}

// OldWineID returns the old "wine_id" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldWineID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWineID: %w", err)
	}
	return oldValue.WineID, nil
}

// ClearWineID clears the value of the "wine_id" field.
func (m *ScanJobMutation) ClearWineID() {
	m.wine = nil
	m.clearedFields[scanjob.FieldWineID] = struct{}{}
}

// WineIDCleared returns if the "wine_id" field was cleared in this mutation.
func (m *ScanJobMutation) WineIDCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldWineID]
	return ok
}

// ResetWineID resets all changes to the "wine_id" field.
func (m *ScanJobMutation) ResetWineID() {
	m.wine = nil
	delete(m.clearedFields, scanjob.FieldWineID)
}

// SetFormat sets the "format" field.
func (m *ScanJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ScanJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ScanJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ScanJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ScanJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ScanJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ScanJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ScanJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ScanJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[scanjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ScanJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ScanJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, scanjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ScanJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ScanJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ScanJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[scanjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ScanJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ScanJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, scanjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ScanJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ScanJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ScanJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[scanjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ScanJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ScanJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, scanjob.FieldErrorMessage)
}

// SetDetectionConfidence sets the "detection_confidence" field.
func (m *ScanJobMutation) SetDetectionConfidence(f float32) {
	m.detection_confidence = &f
	m.adddetection_confidence = nil
}

// DetectionConfidence returns the value of the "detection_confidence" field in the mutation.
func (m *ScanJobMutation) DetectionConfidence() (r float32, exists bool) {
	v := m.detection_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionConfidence returns the old "detection_confidence" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldDetectionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionConfidence: %w", err)
	}
	return oldValue.DetectionConfidence, nil
}

// AddDetectionConfidence adds f to the "detection_confidence" field.
func (m *ScanJobMutation) AddDetectionConfidence(f float32) {
	if m.adddetection_confidence != nil {
		*m.adddetection_confidence += f
	} else {
		m.adddetection_confidence = &f
	}
}

// AddedDetectionConfidence returns the value that was added to the "detection_confidence" field in this mutation.
func (m *ScanJobMutation) AddedDetectionConfidence() (r float32, exists bool) {
	v := m.adddetection_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearDetectionConfidence clears the value of the "detection_confidence" field.
func (m *ScanJobMutation) ClearDetectionConfidence() {
	m.detection_confidence = nil
	m.adddetection_confidence = nil
	m.clearedFields[scanjob.FieldDetectionConfidence] = struct{}{}
}

// DetectionConfidenceCleared returns if the "detection_confidence" field was cleared in this mutation.
func (m *ScanJobMutation) DetectionConfidenceCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldDetectionConfidence]
	return ok
}

// ResetDetectionConfidence resets all changes to the "detection_confidence" field.
func (m *ScanJobMutation) ResetDetectionConfidence() {
	m.detection_confidence = nil
	m.adddetection_confidence = nil
	delete(m.clearedFields, scanjob.FieldDetectionConfidence)
}

// SetCroppedPath sets the "cropped_path" field.
func (m *ScanJobMutation) SetCroppedPath(s string) {
	m.cropped_path = &s
}

// CroppedPath returns the value of the "cropped_path" field in the mutation.
func (m *ScanJobMutation) CroppedPath() (r string, exists bool) {
	v := m.cropped_path
	if v == nil {
		return
	}
	return *v, true
}

// OldCroppedPath returns the old "cropped_path" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldCroppedPath(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCroppedPath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCroppedPath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCroppedPath: %w", err)
	}
	return oldValue.CroppedPath, nil
}

// ClearCroppedPath clears the value of the "cropped_path" field.
func (m *ScanJobMutation) ClearCroppedPath() {
	m.cropped_path = nil
	m.clearedFields[scanjob.FieldCroppedPath] = struct{}{}
}

// CroppedPathCleared returns if the "cropped_path" field was cleared in this mutation.
func (m *ScanJobMutation) CroppedPathCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldCroppedPath]
	return ok
}

// ResetCroppedPath resets all changes to the "cropped_path" field.
func (m *ScanJobMutation) ResetCroppedPath() {
	m.cropped_path = nil
	delete(m.clearedFields, scanjob.FieldCroppedPath)
}

// SetRawText sets the "raw_text" field.
func (m *ScanJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ScanJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ScanJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[scanjob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ScanJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ScanJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, scanjob.FieldRawText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ScanJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ScanJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ScanJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ScanJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ScanJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[scanjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ScanJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ScanJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, scanjob.FieldExtractedJSON)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ScanJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ScanJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ScanJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ScanJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ScanJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[scanjob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ScanJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[scanjob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ScanJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, scanjob.FieldExtractionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ScanJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ScanJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ScanJob entity.
// If the ScanJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ScanJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ScanJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// ClearPhoto clears the "photo" edge to the LabelPhoto entity.
func (m *ScanJobMutation) ClearPhoto() {
	m.clearedphoto = true
	m.clearedFields[scanjob.FieldPhotoID] = struct{}{}
}

// PhotoCleared reports if the "photo" edge to the LabelPhoto entity was cleared.
func (m *ScanJobMutation) PhotoCleared() bool {
	return m.clearedphoto
}

// PhotoIDs returns the "photo" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PhotoID instead. It exists only for internal usage by the builders.
func (m *ScanJobMutation) PhotoIDs() (ids []uuid.UUID) {
	if id := m.photo; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPhoto resets all changes to the "photo" edge.
func (m *ScanJobMutation) ResetPhoto() {
	m.photo = nil
	m.clearedphoto = false
}

// ClearWine clears the "wine" edge to the Wine entity.
func (m *ScanJobMutation) ClearWine() {
	m.clearedwine = true
	m.clearedFields[scanjob.FieldWineID] = struct{}{}
}

// WineCleared reports if the "wine" edge to the Wine entity was cleared.
func (m *ScanJobMutation) WineCleared() bool {
	return m.WineIDCleared() || m.clearedwine
}

// WineIDs returns the "wine" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WineID instead. It exists only for internal usage by the builders.
func (m *ScanJobMutation) WineIDs() (ids []uuid.UUID) {
	if id := m.wine; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWine resets all changes to the "wine" edge.
func (m *ScanJobMutation) ResetWine() {
	m.wine = nil
	m.clearedwine = false
}

// Where appends a list predicates to the ScanJobMutation builder.
func (m *ScanJobMutation) Where(ps ...predicate.ScanJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ScanJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ScanJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ScanJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ScanJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ScanJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ScanJob).
func (m *ScanJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ScanJobMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.photo != nil {
		fields = append(fields, scanjob.FieldPhotoID)
	}
	if m.wine != nil {
		fields = append(fields, scanjob.FieldWineID)
	}
	if m.format != nil {
		fields = append(fields, scanjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, scanjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.detection_confidence != nil {
		fields = append(fields, scanjob.FieldDetectionConfidence)
	}
	if m.cropped_path != nil {
		fields = append(fields, scanjob.FieldCroppedPath)
	}
	if m.raw_text != nil {
		fields = append(fields, scanjob.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, scanjob.FieldExtractedJSON)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, scanjob.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, scanjob.FieldNeedsReview)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ScanJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldPhotoID:
		return m.PhotoID()
	case scanjob.FieldWineID:
		return m.WineID()
	case scanjob.FieldFormat:
		return m.Format()
	case scanjob.FieldStartedAt:
		return m.StartedAt()
	case scanjob.FieldFinishedAt:
		return m.FinishedAt()
	case scanjob.FieldStatus:
		return m.Status()
	case scanjob.FieldErrorMessage:
		return m.ErrorMessage()
	case scanjob.FieldDetectionConfidence:
		return m.DetectionConfidence()
	case scanjob.FieldCroppedPath:
		return m.CroppedPath()
	case scanjob.FieldRawText:
		return m.RawText()
	case scanjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case scanjob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case scanjob.FieldNeedsReview:
		return m.NeedsReview()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ScanJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case scanjob.FieldPhotoID:
		return m.OldPhotoID(ctx)
	case scanjob.FieldWineID:
		return m.OldWineID(ctx)
	case scanjob.FieldFormat:
		return m.OldFormat(ctx)
	case scanjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case scanjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case scanjob.FieldStatus:
		return m.OldStatus(ctx)
	case scanjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case scanjob.FieldDetectionConfidence:
		return m.OldDetectionConfidence(ctx)
	case scanjob.FieldCroppedPath:
		return m.OldCroppedPath(ctx)
	case scanjob.FieldRawText:
		return m.OldRawText(ctx)
	case scanjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case scanjob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case scanjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	}
	return nil, fmt.Errorf("unknown ScanJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldPhotoID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPhotoID(v)
		return nil
	case scanjob.FieldWineID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWineID(v)
		return nil
	case scanjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case scanjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case scanjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case scanjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case scanjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case scanjob.FieldDetectionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionConfidence(v)
		return nil
	case scanjob.FieldCroppedPath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCroppedPath(v)
		return nil
	case scanjob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case scanjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case scanjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case scanjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ScanJobMutation) AddedFields() []string {
	var fields []string
	if m.adddetection_confidence != nil {
		fields = append(fields, scanjob.FieldDetectionConfidence)
	}
	if m.addextraction_confidence != nil {
		fields = append(fields, scanjob.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ScanJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case scanjob.FieldDetectionConfidence:
		return m.AddedDetectionConfidence()
	case scanjob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ScanJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case scanjob.FieldDetectionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDetectionConfidence(v)
		return nil
	case scanjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ScanJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ScanJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(scanjob.FieldWineID) {
		fields = append(fields, scanjob.FieldWineID)
	}
	if m.FieldCleared(scanjob.FieldFinishedAt) {
		fields = append(fields, scanjob.FieldFinishedAt)
	}
	if m.FieldCleared(scanjob.FieldStatus) {
		fields = append(fields, scanjob.FieldStatus)
	}
	if m.FieldCleared(scanjob.FieldErrorMessage) {
		fields = append(fields, scanjob.FieldErrorMessage)
	}
	if m.FieldCleared(scanjob.FieldDetectionConfidence) {
		fields = append(fields, scanjob.FieldDetectionConfidence)
	}
	if m.FieldCleared(scanjob.FieldCroppedPath) {
		fields = append(fields, scanjob.FieldCroppedPath)
	}
	if m.FieldCleared(scanjob.FieldRawText) {
		fields = append(fields, scanjob.FieldRawText)
	}
	if m.FieldCleared(scanjob.FieldExtractedJSON) {
		fields = append(fields, scanjob.FieldExtractedJSON)
	}
	if m.FieldCleared(scanjob.FieldExtractionConfidence) {
		fields = append(fields, scanjob.FieldExtractionConfidence)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ScanJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ScanJobMutation) ClearField(name string) error {
	switch name {
	case scanjob.FieldWineID:
		m.ClearWineID()
		return nil
	case scanjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case scanjob.FieldStatus:
		m.ClearStatus()
		return nil
	case scanjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case scanjob.FieldDetectionConfidence:
		m.ClearDetectionConfidence()
		return nil
	case scanjob.FieldCroppedPath:
		m.ClearCroppedPath()
		return nil
	case scanjob.FieldRawText:
		m.ClearRawText()
		return nil
	case scanjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case scanjob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	}
	return fmt.Errorf("unknown ScanJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ScanJobMutation) ResetField(name string) error {
	switch name {
	case scanjob.FieldPhotoID:
		m.ResetPhotoID()
		return nil
	case scanjob.FieldWineID:
		m.ResetWineID()
		return nil
	case scanjob.FieldFormat:
		m.ResetFormat()
		return nil
	case scanjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case scanjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case scanjob.FieldStatus:
		m.ResetStatus()
		return nil
	case scanjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case scanjob.FieldDetectionConfidence:
		m.ResetDetectionConfidence()
		return nil
	case scanjob.FieldCroppedPath:
		m.ResetCroppedPath()
		return nil
	case scanjob.FieldRawText:
		m.ResetRawText()
		return nil
	case scanjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case scanjob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case scanjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	}
	return fmt.Errorf("unknown ScanJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ScanJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.photo != nil {
		edges = append(edges, scanjob.EdgePhoto)
	}
	if m.wine != nil {
		edges = append(edges, scanjob.EdgeWine)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ScanJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case scanjob.EdgePhoto:
		if id := m.photo; id != nil {
			return []ent.Value{*id}
		}
	case scanjob.EdgeWine:
		if id := m.wine; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ScanJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ScanJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ScanJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedphoto {
		edges = append(edges, scanjob.EdgePhoto)
	}
	if m.clearedwine {
		edges = append(edges, scanjob.EdgeWine)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ScanJobMutation) EdgeCleared(name string) bool {
	switch name {
	case scanjob.EdgePhoto:
		return m.clearedphoto
	case scanjob.EdgeWine:
		return m.clearedwine
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ScanJobMutation) ClearEdge(name string) error {
	switch name {
	case scanjob.EdgePhoto:
		m.ClearPhoto()
		return nil
	case scanjob.EdgeWine:
		m.ClearWine()
		return nil
	}
	return fmt.Errorf("unknown ScanJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ScanJobMutation) ResetEdge(name string) error {
	switch name {
	case scanjob.EdgePhoto:
		m.ResetPhoto()
		return nil
	case scanjob.EdgeWine:
		m.ResetWine()
		return nil
	}
	return fmt.Errorf("unknown ScanJob edge %s", name)
}

// StorageLocationMutation represents an operation that mutates the StorageLocation nodes in the graph.
type StorageLocationMutation struct {
	config
	op             Op
	typ            string
	id             *uuid.UUID
	name           *string
	description    *string
	location_type  *string
	capacity       *int
	addcapacity    *int
	temperature    *float32
	addtemperature *float32
	humidity       *float32
	addhumidity    *float32
	is_active      *bool
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	wines          map[uuid.UUID]struct{}
	removedwines   map[uuid.UUID]struct{}
	clearedwines   bool
	done           bool
	oldValue       func(context.Context) (*StorageLocation, error)
	predicates     []predicate.StorageLocation
}

var _ ent.Mutation = (*StorageLocationMutation)(nil)

// storagelocationOption allows management of the mutation configuration using functional options.
type storagelocationOption func(*StorageLocationMutation)

// newStorageLocationMutation creates new mutation for the StorageLocation entity.
func newStorageLocationMutation(c config, op Op, opts ...storagelocationOption) *StorageLocationMutation {
	m := &StorageLocationMutation{
		config:        c,
		op:            op,
		typ:           TypeStorageLocation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withStorageLocationID sets the ID field of the mutation.
func withStorageLocationID(id uuid.UUID) storagelocationOption {
	return func(m *StorageLocationMutation) {
		var (
			err   error
			once  sync.Once
			value *StorageLocation
		)
		m.oldValue = func(ctx context.Context) (*StorageLocation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().StorageLocation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withStorageLocation sets the old StorageLocation of the mutation.
func withStorageLocation(node *StorageLocation) storagelocationOption {
	return func(m *StorageLocationMutation) {
		m.oldValue = func(context.Context) (*StorageLocation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m StorageLocationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m StorageLocationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of StorageLocation entities.
func (m *StorageLocationMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *StorageLocationMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *StorageLocationMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().StorageLocation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *StorageLocationMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *StorageLocationMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *StorageLocationMutation) ResetName() {
	m.name = nil
}

// SetDescription sets the "description" field.
func (m *StorageLocationMutation) SetDescription(s string) {
	m.description = &s
}

// Description returns the value of the "description" field in the mutation.
func (m *StorageLocationMutation) Description() (r string, exists bool) {
	v := m.description
	if v == nil {
		return
	}
	return *v, true
}

// OldDescription returns the old "description" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldDescription(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDescription is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDescription requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDescription: %w", err)
	}
	return oldValue.Description, nil
}

// ClearDescription clears the value of the "description" field.
func (m *StorageLocationMutation) ClearDescription() {
	m.description = nil
	m.clearedFields[storagelocation.FieldDescription] = struct{}{}
}

// DescriptionCleared returns if the "description" field was cleared in this mutation.
func (m *StorageLocationMutation) DescriptionCleared() bool {
	_, ok := m.clearedFields[storagelocation.FieldDescription]
	return ok
}

// ResetDescription resets all changes to the "description" field.
func (m *StorageLocationMutation) ResetDescription() {
	m.description = nil
	delete(m.clearedFields, storagelocation.FieldDescription)
}

// SetLocationType sets the "location_type" field.
func (m *StorageLocationMutation) SetLocationType(s string) {
	m.location_type = &s
}

// LocationType returns the value of the "location_type" field in the mutation.
func (m *StorageLocationMutation) LocationType() (r string, exists bool) {
	v := m.location_type
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationType returns the old "location_type" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldLocationType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationType: %w", err)
	}
	return oldValue.LocationType, nil
}

// ResetLocationType resets all changes to the "location_type" field.
func (m *StorageLocationMutation) ResetLocationType() {
	m.location_type = nil
}

// SetCapacity sets the "capacity" field.
func (m *StorageLocationMutation) SetCapacity(i int) {
	m.capacity = &i
	m.addcapacity = nil
}

// Capacity returns the value of the "capacity" field in the mutation.
func (m *StorageLocationMutation) Capacity() (r int, exists bool) {
	v := m.capacity
	if v == nil {
		return
	}
	return *v, true
}

// OldCapacity returns the old "capacity" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldCapacity(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCapacity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCapacity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCapacity: %w", err)
	}
	return oldValue.Capacity, nil
}

// AddCapacity adds i to the "capacity" field.
func (m *StorageLocationMutation) AddCapacity(i int) {
	if m.addcapacity != nil {
		*m.addcapacity += i
	} else {
		m.addcapacity = &i
	}
}

// AddedCapacity returns the value that was added to the "capacity" field in this mutation.
func (m *StorageLocationMutation) AddedCapacity() (r int, exists bool) {
	v := m.addcapacity
	if v == nil {
		return
	}
	return *v, true
}

// ClearCapacity clears the value of the "capacity" field.
func (m *StorageLocationMutation) ClearCapacity() {
	m.capacity = nil
	m.addcapacity = nil
	m.clearedFields[storagelocation.FieldCapacity] = struct{}{}
}

// CapacityCleared returns if the "capacity" field was cleared in this mutation.
func (m *StorageLocationMutation) CapacityCleared() bool {
	_, ok := m.clearedFields[storagelocation.FieldCapacity]
	return ok
}

// ResetCapacity resets all changes to the "capacity" field.
func (m *StorageLocationMutation) ResetCapacity() {
	m.capacity = nil
	m.addcapacity = nil
	delete(m.clearedFields, storagelocation.FieldCapacity)
}

// SetTemperature sets the "temperature" field.
func (m *StorageLocationMutation) SetTemperature(f float32) {
	m.temperature = &f
	m.addtemperature = nil
}

// Temperature returns the value of the "temperature" field in the mutation.
func (m *StorageLocationMutation) Temperature() (r float32, exists bool) {
	v := m.temperature
	if v == nil {
		return
	}
	return *v, true
}

// OldTemperature returns the old "temperature" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldTemperature(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTemperature is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTemperature requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTemperature: %w", err)
	}
	return oldValue.Temperature, nil
}

// AddTemperature adds f to the "temperature" field.
func (m *StorageLocationMutation) AddTemperature(f float32) {
	if m.addtemperature != nil {
		*m.addtemperature += f
	} else {
		m.addtemperature = &f
	}
}

// AddedTemperature returns the value that was added to the "temperature" field in this mutation.
func (m *StorageLocationMutation) AddedTemperature() (r float32, exists bool) {
	v := m.addtemperature
	if v == nil {
		return
	}
	return *v, true
}

// ClearTemperature clears the value of the "temperature" field.
func (m *StorageLocationMutation) ClearTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	m.clearedFields[storagelocation.FieldTemperature] = struct{}{}
}

// TemperatureCleared returns if the "temperature" field was cleared in this mutation.
func (m *StorageLocationMutation) TemperatureCleared() bool {
	_, ok := m.clearedFields[storagelocation.FieldTemperature]
	return ok
}

// ResetTemperature resets all changes to the "temperature" field.
func (m *StorageLocationMutation) ResetTemperature() {
	m.temperature = nil
	m.addtemperature = nil
	delete(m.clearedFields, storagelocation.FieldTemperature)
}

// SetHumidity sets the "humidity" field.
func (m *StorageLocationMutation) SetHumidity(f float32) {
	m.humidity = &f
	m.addhumidity = nil
}

// Humidity returns the value of the "humidity" field in the mutation.
func (m *StorageLocationMutation) Humidity() (r float32, exists bool) {
	v := m.humidity
	if v == nil {
		return
	}
	return *v, true
}

// OldHumidity returns the old "humidity" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldHumidity(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHumidity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHumidity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHumidity: %w", err)
	}
	return oldValue.Humidity, nil
}

// AddHumidity adds f to the "humidity" field.
func (m *StorageLocationMutation) AddHumidity(f float32) {
	if m.addhumidity != nil {
		*m.addhumidity += f
	} else {
		m.addhumidity = &f
	}
}

// AddedHumidity returns the value that was added to the "humidity" field in this mutation.
func (m *StorageLocationMutation) AddedHumidity() (r float32, exists bool) {
	v := m.addhumidity
	if v == nil {
		return
	}
	return *v, true
}

// ClearHumidity clears the value of the "humidity" field.
func (m *StorageLocationMutation) ClearHumidity() {
	m.humidity = nil
	m.addhumidity = nil
	m.clearedFields[storagelocation.FieldHumidity] = struct{}{}
}

// HumidityCleared returns if the "humidity" field was cleared in this mutation.
func (m *StorageLocationMutation) HumidityCleared() bool {
	_, ok := m.clearedFields[storagelocation.FieldHumidity]
	return ok
}

// ResetHumidity resets all changes to the "humidity" field.
func (m *StorageLocationMutation) ResetHumidity() {
	m.humidity = nil
	m.addhumidity = nil
	delete(m.clearedFields, storagelocation.FieldHumidity)
}

// SetIsActive sets the "is_active" field.
func (m *StorageLocationMutation) SetIsActive(b bool) {
	m.is_active = &b
}

// IsActive returns the value of the "is_active" field in the mutation.
func (m *StorageLocationMutation) IsActive() (r bool, exists bool) {
	v := m.is_active
	if v == nil {
		return
	}
	return *v, true
}

// OldIsActive returns the old "is_active" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldIsActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsActive: %w", err)
	}
	return oldValue.IsActive, nil
}

// ResetIsActive resets all changes to the "is_active" field.
func (m *StorageLocationMutation) ResetIsActive() {
	m.is_active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *StorageLocationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *StorageLocationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *StorageLocationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *StorageLocationMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *StorageLocationMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the StorageLocation entity.
// If the StorageLocation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *StorageLocationMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *StorageLocationMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddWineIDs adds the "wines" edge to the Wine entity by ids.
func (m *StorageLocationMutation) AddWineIDs(ids ...uuid.UUID) {
	if m.wines == nil {
		m.wines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.wines[ids[i]] = struct{}{}
	}
}

// ClearWines clears the "wines" edge to the Wine entity.
func (m *StorageLocationMutation) ClearWines() {
	m.clearedwines = true
}

// WinesCleared reports if the "wines" edge to the Wine entity was cleared.
func (m *StorageLocationMutation) WinesCleared() bool {
	return m.clearedwines
}

// RemoveWineIDs removes the "wines" edge to the Wine entity by IDs.
func (m *StorageLocationMutation) RemoveWineIDs(ids ...uuid.UUID) {
	if m.removedwines == nil {
		m.removedwines = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.wines, ids[i])
		m.removedwines[ids[i]] = struct{}{}
	}
}

// RemovedWines returns the removed IDs of the "wines" edge to the Wine entity.
func (m *StorageLocationMutation) RemovedWinesIDs() (ids []uuid.UUID) {
	for id := range m.removedwines {
		ids = append(ids, id)
	}
	return
}

// WinesIDs returns the "wines" edge IDs in the mutation.
func (m *StorageLocationMutation) WinesIDs() (ids []uuid.UUID) {
	for id := range m.wines {
		ids = append(ids, id)
	}
	return
}

// ResetWines resets all changes to the "wines" edge.
func (m *StorageLocationMutation) ResetWines() {
	m.wines = nil
	m.clearedwines = false
	m.removedwines = nil
}

// Where appends a list predicates to the StorageLocationMutation builder.
func (m *StorageLocationMutation) Where(ps ...predicate.StorageLocation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the StorageLocationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *StorageLocationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.StorageLocation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *StorageLocationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *StorageLocationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (StorageLocation).
func (m *StorageLocationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *StorageLocationMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.name != nil {
		fields = append(fields, storagelocation.FieldName)
	}
	if m.description != nil {
		fields = append(fields, storagelocation.FieldDescription)
	}
	if m.location_type != nil {
		fields = append(fields, storagelocation.FieldLocationType)
	}
	if m.capacity != nil {
		fields = append(fields, storagelocation.FieldCapacity)
	}
	if m.temperature != nil {
		fields = append(fields, storagelocation.FieldTemperature)
	}
	if m.humidity != nil {
		fields = append(fields, storagelocation.FieldHumidity)
	}
	if m.is_active != nil {
		fields = append(fields, storagelocation.FieldIsActive)
	}
	if m.created_at != nil {
		fields = append(fields, storagelocation.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, storagelocation.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *StorageLocationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case storagelocation.FieldName:
		return m.Name()
	case storagelocation.FieldDescription:
		return m.Description()
	case storagelocation.FieldLocationType:
		return m.LocationType()
	case storagelocation.FieldCapacity:
		return m.Capacity()
	case storagelocation.FieldTemperature:
		return m.Temperature()
	case storagelocation.FieldHumidity:
		return m.Humidity()
	case storagelocation.FieldIsActive:
		return m.IsActive()
	case storagelocation.FieldCreatedAt:
		return m.CreatedAt()
	case storagelocation.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *StorageLocationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case storagelocation.FieldName:
		return m.OldName(ctx)
	case storagelocation.FieldDescription:
		return m.OldDescription(ctx)
	case storagelocation.FieldLocationType:
		return m.OldLocationType(ctx)
	case storagelocation.FieldCapacity:
		return m.OldCapacity(ctx)
	case storagelocation.FieldTemperature:
		return m.OldTemperature(ctx)
	case storagelocation.FieldHumidity:
		return m.OldHumidity(ctx)
	case storagelocation.FieldIsActive:
		return m.OldIsActive(ctx)
	case storagelocation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case storagelocation.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown StorageLocation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StorageLocationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case storagelocation.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case storagelocation.FieldDescription:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDescription(v)
		return nil
	case storagelocation.FieldLocationType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationType(v)
		return nil
	case storagelocation.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCapacity(v)
		return nil
	case storagelocation.FieldTemperature:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTemperature(v)
		return nil
	case storagelocation.FieldHumidity:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHumidity(v)
		return nil
	case storagelocation.FieldIsActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsActive(v)
		return nil
	case storagelocation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case storagelocation.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown StorageLocation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *StorageLocationMutation) AddedFields() []string {
	var fields []string
	if m.addcapacity != nil {
		fields = append(fields, storagelocation.FieldCapacity)
	}
	if m.addtemperature != nil {
		fields = append(fields, storagelocation.FieldTemperature)
	}
	if m.addhumidity != nil {
		fields = append(fields, storagelocation.FieldHumidity)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *StorageLocationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case storagelocation.FieldCapacity:
		return m.AddedCapacity()
	case storagelocation.FieldTemperature:
		return m.AddedTemperature()
	case storagelocation.FieldHumidity:
		return m.AddedHumidity()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *StorageLocationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case storagelocation.FieldCapacity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCapacity(v)
		return nil
	case storagelocation.FieldTemperature:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTemperature(v)
		return nil
	case storagelocation.FieldHumidity:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddHumidity(v)
		return nil
	}
	return fmt.Errorf("unknown StorageLocation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *StorageLocationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(storagelocation.FieldDescription) {
		fields = append(fields, storagelocation.FieldDescription)
	}
	if m.FieldCleared(storagelocation.FieldCapacity) {
		fields = append(fields, storagelocation.FieldCapacity)
	}
	if m.FieldCleared(storagelocation.FieldTemperature) {
		fields = append(fields, storagelocation.FieldTemperature)
	}
	if m.FieldCleared(storagelocation.FieldHumidity) {
		fields = append(fields, storagelocation.FieldHumidity)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *StorageLocationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *StorageLocationMutation) ClearField(name string) error {
	switch name {
	case storagelocation.FieldDescription:
		m.ClearDescription()
		return nil
	case storagelocation.FieldCapacity:
		m.ClearCapacity()
		return nil
	case storagelocation.FieldTemperature:
		m.ClearTemperature()
		return nil
	case storagelocation.FieldHumidity:
		m.ClearHumidity()
		return nil
	}
	return fmt.Errorf("unknown StorageLocation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *StorageLocationMutation) ResetField(name string) error {
	switch name {
	case storagelocation.FieldName:
		m.ResetName()
		return nil
	case storagelocation.FieldDescription:
		m.ResetDescription()
		return nil
	case storagelocation.FieldLocationType:
		m.ResetLocationType()
		return nil
	case storagelocation.FieldCapacity:
		m.ResetCapacity()
		return nil
	case storagelocation.FieldTemperature:
		m.ResetTemperature()
		return nil
	case storagelocation.FieldHumidity:
		m.ResetHumidity()
		return nil
	case storagelocation.FieldIsActive:
		m.ResetIsActive()
		return nil
	case storagelocation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case storagelocation.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown StorageLocation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *StorageLocationMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.wines != nil {
		edges = append(edges, storagelocation.EdgeWines)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *StorageLocationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case storagelocation.EdgeWines:
		ids := make([]ent.Value, 0, len(m.wines))
		for id := range m.wines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *StorageLocationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedwines != nil {
		edges = append(edges, storagelocation.EdgeWines)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *StorageLocationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case storagelocation.EdgeWines:
		ids := make([]ent.Value, 0, len(m.removedwines))
		for id := range m.removedwines {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *StorageLocationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwines {
		edges = append(edges, storagelocation.EdgeWines)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *StorageLocationMutation) EdgeCleared(name string) bool {
	switch name {
	case storagelocation.EdgeWines:
		return m.clearedwines
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *StorageLocationMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown StorageLocation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *StorageLocationMutation) ResetEdge(name string) error {
	switch name {
	case storagelocation.EdgeWines:
		m.ResetWines()
		return nil
	}
	return fmt.Errorf("unknown StorageLocation edge %s", name)
}

// TastingNoteMutation represents an operation that mutates the TastingNote nodes in the graph.
type TastingNoteMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	tasting_date  *time.Time
	location      *string
	occasion      *string
	color         *string
	aromas        *string
	palate        *string
	score         *float32
	addscore      *float32
	notes         *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	wine          *uuid.UUID
	clearedwine   bool
	done          bool
	oldValue      func(context.Context) (*TastingNote, error)
	predicates    []predicate.TastingNote
}

var _ ent.Mutation = (*TastingNoteMutation)(nil)

// tastingnoteOption allows management of the mutation configuration using functional options.
type tastingnoteOption func(*TastingNoteMutation)

// newTastingNoteMutation creates new mutation for the TastingNote entity.
func newTastingNoteMutation(c config, op Op, opts ...tastingnoteOption) *TastingNoteMutation {
	m := &TastingNoteMutation{
		config:        c,
		op:            op,
		typ:           TypeTastingNote,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTastingNoteID sets the ID field of the mutation.
func withTastingNoteID(id uuid.UUID) tastingnoteOption {
	return func(m *TastingNoteMutation) {
		var (
			err   error
			once  sync.Once
			value *TastingNote
		)
		m.oldValue = func(ctx context.Context) (*TastingNote, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TastingNote.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTastingNote sets the old TastingNote of the mutation.
func withTastingNote(node *TastingNote) tastingnoteOption {
	return func(m *TastingNoteMutation) {
		m.oldValue = func(context.Context) (*TastingNote, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TastingNoteMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TastingNoteMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TastingNote entities.
func (m *TastingNoteMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TastingNoteMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TastingNoteMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TastingNote.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWineID sets the "wine_id" field.
func (m *TastingNoteMutation) SetWineID(u uuid.UUID) {
	m.wine = &u
}

// WineID returns the value of the "wine_id" field in the mutation.
func (m *TastingNoteMutation) WineID() (r uuid.UUID, exists bool) {
	v := m.wine
	if v == nil {
		return
	}
	return *v, true
}

// OldWineID returns the old "wine_id" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldWineID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWineID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWineID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWineID: %w", err)
	}
	return oldValue.WineID, nil
}

// ResetWineID resets all changes to the "wine_id" field.
func (m *TastingNoteMutation) ResetWineID() {
	m.wine = nil
}

// SetTastingDate sets the "tasting_date" field.
func (m *TastingNoteMutation) SetTastingDate(t time.Time) {
	m.tasting_date = &t
}

// TastingDate returns the value of the "tasting_date" field in the mutation.
func (m *TastingNoteMutation) TastingDate() (r time.Time, exists bool) {
	v := m.tasting_date
	if v == nil {
		return
	}
	return *v, true
}

// OldTastingDate returns the old "tasting_date" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldTastingDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTastingDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTastingDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTastingDate: %w", err)
	}
	return oldValue.TastingDate, nil
}

// ResetTastingDate resets all changes to the "tasting_date" field.
func (m *TastingNoteMutation) ResetTastingDate() {
	m.tasting_date = nil
}

// SetLocation sets the "location" field.
func (m *TastingNoteMutation) SetLocation(s string) {
	m.location = &s
}

// Location returns the value of the "location" field in the mutation.
func (m *TastingNoteMutation) Location() (r string, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocation returns the old "location" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldLocation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocation: %w", err)
	}
	return oldValue.Location, nil
}

// ClearLocation clears the value of the "location" field.
func (m *TastingNoteMutation) ClearLocation() {
	m.location = nil
	m.clearedFields[tastingnote.FieldLocation] = struct{}{}
}

// LocationCleared returns if the "location" field was cleared in this mutation.
func (m *TastingNoteMutation) LocationCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldLocation]
	return ok
}

// ResetLocation resets all changes to the "location" field.
func (m *TastingNoteMutation) ResetLocation() {
	m.location = nil
	delete(m.clearedFields, tastingnote.FieldLocation)
}

// SetOccasion sets the "occasion" field.
func (m *TastingNoteMutation) SetOccasion(s string) {
	m.occasion = &s
}

// Occasion returns the value of the "occasion" field in the mutation.
func (m *TastingNoteMutation) Occasion() (r string, exists bool) {
	v := m.occasion
	if v == nil {
		return
	}
	return *v, true
}

// OldOccasion returns the old "occasion" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldOccasion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOccasion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOccasion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOccasion: %w", err)
	}
	return oldValue.Occasion, nil
}

// ClearOccasion clears the value of the "occasion" field.
func (m *TastingNoteMutation) ClearOccasion() {
	m.occasion = nil
	m.clearedFields[tastingnote.FieldOccasion] = struct{}{}
}

// OccasionCleared returns if the "occasion" field was cleared in this mutation.
func (m *TastingNoteMutation) OccasionCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldOccasion]
	return ok
}

// ResetOccasion resets all changes to the "occasion" field.
func (m *TastingNoteMutation) ResetOccasion() {
	m.occasion = nil
	delete(m.clearedFields, tastingnote.FieldOccasion)
}

// SetColor sets the "color" field.
func (m *TastingNoteMutation) SetColor(s string) {
	m.color = &s
}

// Color returns the value of the "color" field in the mutation.
func (m *TastingNoteMutation) Color() (r string, exists bool) {
	v := m.color
	if v == nil {
		return
	}
	return *v, true
}

// OldColor returns the old "color" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldColor(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldColor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldColor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldColor: %w", err)
	}
	return oldValue.Color, nil
}

// ClearColor clears the value of the "color" field.
func (m *TastingNoteMutation) ClearColor() {
	m.color = nil
	m.clearedFields[tastingnote.FieldColor] = struct{}{}
}

// ColorCleared returns if the "color" field was cleared in this mutation.
func (m *TastingNoteMutation) ColorCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldColor]
	return ok
}

// ResetColor resets all changes to the "color" field.
func (m *TastingNoteMutation) ResetColor() {
	m.color = nil
	delete(m.clearedFields, tastingnote.FieldColor)
}

// SetAromas sets the "aromas" field.
func (m *TastingNoteMutation) SetAromas(s string) {
	m.aromas = &s
}

// Aromas returns the value of the "aromas" field in the mutation.
func (m *TastingNoteMutation) Aromas() (r string, exists bool) {
	v := m.aromas
	if v == nil {
		return
	}
	return *v, true
}

// OldAromas returns the old "aromas" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldAromas(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAromas is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAromas requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAromas: %w", err)
	}
	return oldValue.Aromas, nil
}

// ClearAromas clears the value of the "aromas" field.
func (m *TastingNoteMutation) ClearAromas() {
	m.aromas = nil
	m.clearedFields[tastingnote.FieldAromas] = struct{}{}
}

// AromasCleared returns if the "aromas" field was cleared in this mutation.
func (m *TastingNoteMutation) AromasCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldAromas]
	return ok
}

// ResetAromas resets all changes to the "aromas" field.
func (m *TastingNoteMutation) ResetAromas() {
	m.aromas = nil
	delete(m.clearedFields, tastingnote.FieldAromas)
}

// SetPalate sets the "palate" field.
func (m *TastingNoteMutation) SetPalate(s string) {
	m.palate = &s
}

// Palate returns the value of the "palate" field in the mutation.
func (m *TastingNoteMutation) Palate() (r string, exists bool) {
	v := m.palate
	if v == nil {
		return
	}
	return *v, true
}

// OldPalate returns the old "palate" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldPalate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPalate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPalate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPalate: %w", err)
	}
	return oldValue.Palate, nil
}

// ClearPalate clears the value of the "palate" field.
func (m *TastingNoteMutation) ClearPalate() {
	m.palate = nil
	m.clearedFields[tastingnote.FieldPalate] = struct{}{}
}

// PalateCleared returns if the "palate" field was cleared in this mutation.
func (m *TastingNoteMutation) PalateCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldPalate]
	return ok
}

// ResetPalate resets all changes to the "palate" field.
func (m *TastingNoteMutation) ResetPalate() {
	m.palate = nil
	delete(m.clearedFields, tastingnote.FieldPalate)
}

// SetScore sets the "score" field.
func (m *TastingNoteMutation) SetScore(f float32) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *TastingNoteMutation) Score() (r float32, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldScore(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *TastingNoteMutation) AddScore(f float32) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *TastingNoteMutation) AddedScore() (r float32, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ClearScore clears the value of the "score" field.
func (m *TastingNoteMutation) ClearScore() {
	m.score = nil
	m.addscore = nil
	m.clearedFields[tastingnote.FieldScore] = struct{}{}
}

// ScoreCleared returns if the "score" field was cleared in this mutation.
func (m *TastingNoteMutation) ScoreCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldScore]
	return ok
}

// ResetScore resets all changes to the "score" field.
func (m *TastingNoteMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
	delete(m.clearedFields, tastingnote.FieldScore)
}

// SetNotes sets the "notes" field.
func (m *TastingNoteMutation) SetNotes(s string) {
	m.notes = &s
}

// Notes returns the value of the "notes" field in the mutation.
func (m *TastingNoteMutation) Notes() (r string, exists bool) {
	v := m.notes
	if v == nil {
		return
	}
	return *v, true
}

// OldNotes returns the old "notes" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldNotes(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNotes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNotes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNotes: %w", err)
	}
	return oldValue.Notes, nil
}

// ClearNotes clears the value of the "notes" field.
func (m *TastingNoteMutation) ClearNotes() {
	m.notes = nil
	m.clearedFields[tastingnote.FieldNotes] = struct{}{}
}

// NotesCleared returns if the "notes" field was cleared in this mutation.
func (m *TastingNoteMutation) NotesCleared() bool {
	_, ok := m.clearedFields[tastingnote.FieldNotes]
	return ok
}

// ResetNotes resets all changes to the "notes" field.
func (m *TastingNoteMutation) ResetNotes() {
	m.notes = nil
	delete(m.clearedFields, tastingnote.FieldNotes)
}

// SetCreatedAt sets the "created_at" field.
func (m *TastingNoteMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TastingNoteMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TastingNoteMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TastingNoteMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TastingNoteMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TastingNote entity.
// If the TastingNote object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TastingNoteMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TastingNoteMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearWine clears the "wine" edge to the Wine entity.
func (m *TastingNoteMutation) ClearWine() {
	m.clearedwine = true
	m.clearedFields[tastingnote.FieldWineID] = struct{}{}
}

// WineCleared reports if the "wine" edge to the Wine entity was cleared.
func (m *TastingNoteMutation) WineCleared() bool {
	return m.clearedwine
}

// WineIDs returns the "wine" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// WineID instead. It exists only for internal usage by the builders.
func (m *TastingNoteMutation) WineIDs() (ids []uuid.UUID) {
	if id := m.wine; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetWine resets all changes to the "wine" edge.
func (m *TastingNoteMutation) ResetWine() {
	m.wine = nil
	m.clearedwine = false
}

// Where appends a list predicates to the TastingNoteMutation builder.
func (m *TastingNoteMutation) Where(ps ...predicate.TastingNote) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TastingNoteMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TastingNoteMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TastingNote, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TastingNoteMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TastingNoteMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TastingNote).
func (m *TastingNoteMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TastingNoteMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.wine != nil {
		fields = append(fields, tastingnote.FieldWineID)
	}
	if m.tasting_date != nil {
		fields = append(fields, tastingnote.FieldTastingDate)
	}
	if m.location != nil {
		fields = append(fields, tastingnote.FieldLocation)
	}
	if m.occasion != nil {
		fields = append(fields, tastingnote.FieldOccasion)
	}
	if m.color != nil {
		fields = append(fields, tastingnote.FieldColor)
	}
	if m.aromas != nil {
		fields = append(fields, tastingnote.FieldAromas)
	}
	if m.palate != nil {
		fields = append(fields, tastingnote.FieldPalate)
	}
	if m.score != nil {
		fields = append(fields, tastingnote.FieldScore)
	}
	if m.notes != nil {
		fields = append(fields, tastingnote.FieldNotes)
	}
	if m.created_at != nil {
		fields = append(fields, tastingnote.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tastingnote.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TastingNoteMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tastingnote.FieldWineID:
		return m.WineID()
	case tastingnote.FieldTastingDate:
		return m.TastingDate()
	case tastingnote.FieldLocation:
		return m.Location()
	case tastingnote.FieldOccasion:
		return m.Occasion()
	case tastingnote.FieldColor:
		return m.Color()
	case tastingnote.FieldAromas:
		return m.Aromas()
	case tastingnote.FieldPalate:
		return m.Palate()
	case tastingnote.FieldScore:
		return m.Score()
	case tastingnote.FieldNotes:
		return m.Notes()
	case tastingnote.FieldCreatedAt:
		return m.CreatedAt()
	case tastingnote.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TastingNoteMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tastingnote.FieldWineID:
		return m.OldWineID(ctx)
	case tastingnote.FieldTastingDate:
		return m.OldTastingDate(ctx)
	case tastingnote.FieldLocation:
		return m.OldLocation(ctx)
	case tastingnote.FieldOccasion:
		return m.OldOccasion(ctx)
	case tastingnote.FieldColor:
		return m.OldColor(ctx)
	case tastingnote.FieldAromas:
		return m.OldAromas(ctx)
	case tastingnote.FieldPalate:
		return m.OldPalate(ctx)
	case tastingnote.FieldScore:
		return m.OldScore(ctx)
	case tastingnote.FieldNotes:
		return m.OldNotes(ctx)
	case tastingnote.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tastingnote.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TastingNote field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TastingNoteMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tastingnote.FieldWineID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWineID(v)
		return nil
	case tastingnote.FieldTastingDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTastingDate(v)
		return nil
	case tastingnote.FieldLocation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocation(v)
		return nil
	case tastingnote.FieldOccasion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOccasion(v)
		return nil
	case tastingnote.FieldColor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetColor(v)
		return nil
	case tastingnote.FieldAromas:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAromas(v)
		return nil
	case tastingnote.FieldPalate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPalate(v)
		return nil
	case tastingnote.FieldScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case tastingnote.FieldNotes:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNotes(v)
		return nil
	case tastingnote.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tastingnote.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TastingNote field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TastingNoteMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, tastingnote.FieldScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TastingNoteMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tastingnote.FieldScore:
		return m.AddedScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TastingNoteMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tastingnote.FieldScore:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	}
	return fmt.Errorf("unknown TastingNote numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TastingNoteMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tastingnote.FieldLocation) {
		fields = append(fields, tastingnote.FieldLocation)
	}
	if m.FieldCleared(tastingnote.FieldOccasion) {
		fields = append(fields, tastingnote.FieldOccasion)
	}
	if m.FieldCleared(tastingnote.FieldColor) {
		fields = append(fields, tastingnote.FieldColor)
	}
	if m.FieldCleared(tastingnote.FieldAromas) {
		fields = append(fields, tastingnote.FieldAromas)
	}
	if m.FieldCleared(tastingnote.FieldPalate) {
		fields = append(fields, tastingnote.FieldPalate)
	}
	if m.FieldCleared(tastingnote.FieldScore) {
		fields = append(fields, tastingnote.FieldScore)
	}
	if m.FieldCleared(tastingnote.FieldNotes) {
		fields = append(fields, tastingnote.FieldNotes)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TastingNoteMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TastingNoteMutation) ClearField(name string) error {
	switch name {
	case tastingnote.FieldLocation:
		m.ClearLocation()
		return nil
	case tastingnote.FieldOccasion:
		m.ClearOccasion()
		return nil
	case tastingnote.FieldColor:
		m.ClearColor()
		return nil
	case tastingnote.FieldAromas:
		m.ClearAromas()
		return nil
	case tastingnote.FieldPalate:
		m.ClearPalate()
		return nil
	case tastingnote.FieldScore:
		m.ClearScore()
		return nil
	case tastingnote.FieldNotes:
		m.ClearNotes()
		return nil
	}
	return fmt.Errorf("unknown TastingNote nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TastingNoteMutation) ResetField(name string) error {
	switch name {
	case tastingnote.FieldWineID:
		m.ResetWineID()
		return nil
	case tastingnote.FieldTastingDate:
		m.ResetTastingDate()
		return nil
	case tastingnote.FieldLocation:
		m.ResetLocation()
		return nil
	case tastingnote.FieldOccasion:
		m.ResetOccasion()
		return nil
	case tastingnote.FieldColor:
		m.ResetColor()
		return nil
	case tastingnote.FieldAromas:
		m.ResetAromas()
		return nil
	case tastingnote.FieldPalate:
		m.ResetPalate()
		return nil
	case tastingnote.FieldScore:
		m.ResetScore()
		return nil
	case tastingnote.FieldNotes:
		m.ResetNotes()
		return nil
	case tastingnote.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tastingnote.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TastingNote field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TastingNoteMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.wine != nil {
		edges = append(edges, tastingnote.EdgeWine)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TastingNoteMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case tastingnote.EdgeWine:
		if id := m.wine; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TastingNoteMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TastingNoteMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TastingNoteMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedwine {
		edges = append(edges, tastingnote.EdgeWine)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TastingNoteMutation) EdgeCleared(name string) bool {
	switch name {
	case tastingnote.EdgeWine:
		return m.clearedwine
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TastingNoteMutation) ClearEdge(name string) error {
	switch name {
	case tastingnote.EdgeWine:
		m.ClearWine()
		return nil
	}
	return fmt.Errorf("unknown TastingNote unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TastingNoteMutation) ResetEdge(name string) error {
	switch name {
	case tastingnote.EdgeWine:
		m.ResetWine()
		return nil
	}
	return fmt.Errorf("unknown TastingNote edge %s", name)
}

// WineMutation represents an operation that mutates the Wine nodes in the graph.
type WineMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	name                     *string
	producer                 *string
	vintage                  *int
	addvintage               *int
	wine_type                *string
	country                  *string
	region                   *string
	sub_region               *string
	appellation              *string
	grape_varieties          *[]string
	appendgrape_varieties    []string
	alcohol_content          *float32
	addalcohol_content       *float32
	bottle_size              *string
	quantity                 *int
	addquantity              *int
	purchase_price           *float64
	addpurchase_price        *float64
	purchase_date            *time.Time
	currency                 *string
	personal_rating          *float32
	addpersonal_rating       *float32
	drinking_window_start    *int
	adddrinking_window_start *int
	drinking_window_end      *int
	adddrinking_window_end   *int
	peak_maturity_year       *int
	addpeak_maturity_year    *int
	tasting_summary          *string
	food_pairings            *[]string
	appendfood_pairings      []string
	systembolaget_id         *string
	barcode                  *string
	is_deleted               *bool
	created_at               *time.Time
	updated_at               *time.Time
	clearedFields            map[string]struct{}
	location                 *uuid.UUID
	clearedlocation          bool
	notes                    map[uuid.UUID]struct{}
	removednotes             map[uuid.UUID]struct{}
	clearednotes             bool
	jobs                     map[uuid.UUID]struct{}
	removedjobs              map[uuid.UUID]struct{}
	clearedjobs              bool
	done                     bool
	oldValue                 func(context.Context) (*Wine, error)
	predicates               []predicate.Wine
}

var _ ent.Mutation = (*WineMutation)(nil)

// wineOption allows management of the mutation configuration using functional options.
type wineOption func(*WineMutation)

// newWineMutation creates new mutation for the Wine entity.
func newWineMutation(c config, op Op, opts ...wineOption) *WineMutation {
	m := &WineMutation{
		config:        c,
		op:            op,
		typ:           TypeWine,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWineID sets the ID field of the mutation.
func withWineID(id uuid.UUID) wineOption {
	return func(m *WineMutation) {
		var (
			err   error
			once  sync.Once
			value *Wine
		)
		m.oldValue = func(ctx context.Context) (*Wine, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Wine.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWine sets the old Wine of the mutation.
func withWine(node *Wine) wineOption {
	return func(m *WineMutation) {
		m.oldValue = func(context.Context) (*Wine, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WineMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WineMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Wine entities.
func (m *WineMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WineMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WineMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Wine.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetName sets the "name" field.
func (m *WineMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *WineMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *WineMutation) ResetName() {
	m.name = nil
}

// SetProducer sets the "producer" field.
func (m *WineMutation) SetProducer(s string) {
	m.producer = &s
}

// Producer returns the value of the "producer" field in the mutation.
func (m *WineMutation) Producer() (r string, exists bool) {
	v := m.producer
	if v == nil {
		return
	}
	return *v, true
}

// OldProducer returns the old "producer" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldProducer(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProducer is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProducer requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProducer: %w", err)
	}
	return oldValue.Producer, nil
}

// ResetProducer resets all changes to the "producer" field.
func (m *WineMutation) ResetProducer() {
	m.producer = nil
}

// SetVintage sets the "vintage" field.
func (m *WineMutation) SetVintage(i int) {
	m.vintage = &i
	m.addvintage = nil
}

// Vintage returns the value of the "vintage" field in the mutation.
func (m *WineMutation) Vintage() (r int, exists bool) {
	v := m.vintage
	if v == nil {
		return
	}
	return *v, true
}

// OldVintage returns the old "vintage" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldVintage(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVintage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVintage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVintage: %w", err)
	}
	return oldValue.Vintage, nil
}

// AddVintage adds i to the "vintage" field.
func (m *WineMutation) AddVintage(i int) {
	if m.addvintage != nil {
		*m.addvintage += i
	} else {
		m.addvintage = &i
	}
}

// AddedVintage returns the value that was added to the "vintage" field in this mutation.
func (m *WineMutation) AddedVintage() (r int, exists bool) {
	v := m.addvintage
	if v == nil {
		return
	}
	return *v, true
}

// ClearVintage clears the value of the "vintage" field.
func (m *WineMutation) ClearVintage() {
	m.vintage = nil
	m.addvintage = nil
	m.clearedFields[wine.FieldVintage] = struct{}{}
}

// VintageCleared returns if the "vintage" field was cleared in this mutation.
func (m *WineMutation) VintageCleared() bool {
	_, ok := m.clearedFields[wine.FieldVintage]
	return ok
}

// ResetVintage resets all changes to the "vintage" field.
func (m *WineMutation) ResetVintage() {
	m.vintage = nil
	m.addvintage = nil
	delete(m.clearedFields, wine.FieldVintage)
}

// SetWineType sets the "wine_type" field.
func (m *WineMutation) SetWineType(s string) {
	m.wine_type = &s
}

// WineType returns the value of the "wine_type" field in the mutation.
func (m *WineMutation) WineType() (r string, exists bool) {
	v := m.wine_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWineType returns the old "wine_type" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldWineType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWineType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWineType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWineType: %w", err)
	}
	return oldValue.WineType, nil
}

// ResetWineType resets all changes to the "wine_type" field.
func (m *WineMutation) ResetWineType() {
	m.wine_type = nil
}

// SetCountry sets the "country" field.
func (m *WineMutation) SetCountry(s string) {
	m.country = &s
}

// Country returns the value of the "country" field in the mutation.
func (m *WineMutation) Country() (r string, exists bool) {
	v := m.country
	if v == nil {
		return
	}
	return *v, true
}

// OldCountry returns the old "country" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldCountry(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCountry is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCountry requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCountry: %w", err)
	}
	return oldValue.Country, nil
}

// ClearCountry clears the value of the "country" field.
func (m *WineMutation) ClearCountry() {
	m.country = nil
	m.clearedFields[wine.FieldCountry] = struct{}{}
}

// CountryCleared returns if the "country" field was cleared in this mutation.
func (m *WineMutation) CountryCleared() bool {
	_, ok := m.clearedFields[wine.FieldCountry]
	return ok
}

// ResetCountry resets all changes to the "country" field.
func (m *WineMutation) ResetCountry() {
	m.country = nil
	delete(m.clearedFields, wine.FieldCountry)
}

// SetRegion sets the "region" field.
func (m *WineMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *WineMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *WineMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[wine.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *WineMutation) RegionCleared() bool {
	_, ok := m.clearedFields[wine.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *WineMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, wine.FieldRegion)
}

// SetSubRegion sets the "sub_region" field.
func (m *WineMutation) SetSubRegion(s string) {
	m.sub_region = &s
}

// SubRegion returns the value of the "sub_region" field in the mutation.
func (m *WineMutation) SubRegion() (r string, exists bool) {
	v := m.sub_region
	if v == nil {
		return
	}
	return *v, true
}

// OldSubRegion returns the old "sub_region" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldSubRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubRegion: %w", err)
	}
	return oldValue.SubRegion, nil
}

// ClearSubRegion clears the value of the "sub_region" field.
func (m *WineMutation) ClearSubRegion() {
	m.sub_region = nil
	m.clearedFields[wine.FieldSubRegion] = struct{}{}
}

// SubRegionCleared returns if the "sub_region" field was cleared in this mutation.
func (m *WineMutation) SubRegionCleared() bool {
	_, ok := m.clearedFields[wine.FieldSubRegion]
	return ok
}

// ResetSubRegion resets all changes to the "sub_region" field.
func (m *WineMutation) ResetSubRegion() {
	m.sub_region = nil
	delete(m.clearedFields, wine.FieldSubRegion)
}

// SetAppellation sets the "appellation" field.
func (m *WineMutation) SetAppellation(s string) {
	m.appellation = &s
}

// Appellation returns the value of the "appellation" field in the mutation.
func (m *WineMutation) Appellation() (r string, exists bool) {
	v := m.appellation
	if v == nil {
		return
	}
	return *v, true
}

// OldAppellation returns the old "appellation" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldAppellation(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAppellation is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAppellation requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAppellation: %w", err)
	}
	return oldValue.Appellation, nil
}

// ClearAppellation clears the value of the "appellation" field.
func (m *WineMutation) ClearAppellation() {
	m.appellation = nil
	m.clearedFields[wine.FieldAppellation] = struct{}{}
}

// AppellationCleared returns if the "appellation" field was cleared in this mutation.
func (m *WineMutation) AppellationCleared() bool {
	_, ok := m.clearedFields[wine.FieldAppellation]
	return ok
}

// ResetAppellation resets all changes to the "appellation" field.
func (m *WineMutation) ResetAppellation() {
	m.appellation = nil
	delete(m.clearedFields, wine.FieldAppellation)
}

// SetGrapeVarieties sets the "grape_varieties" field.
func (m *WineMutation) SetGrapeVarieties(s []string) {
	m.grape_varieties = &s
	m.appendgrape_varieties = nil
}

// GrapeVarieties returns the value of the "grape_varieties" field in the mutation.
func (m *WineMutation) GrapeVarieties() (r []string, exists bool) {
	v := m.grape_varieties
	if v == nil {
		return
	}
	return *v, true
}

// OldGrapeVarieties returns the old "grape_varieties" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldGrapeVarieties(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrapeVarieties is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrapeVarieties requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrapeVarieties: %w", err)
	}
	return oldValue.GrapeVarieties, nil
}

// AppendGrapeVarieties adds s to the "grape_varieties" field.
func (m *WineMutation) AppendGrapeVarieties(s []string) {
	m.appendgrape_varieties = append(m.appendgrape_varieties, s...)
}

// AppendedGrapeVarieties returns the list of values that were appended to the "grape_varieties" field in this mutation.
func (m *WineMutation) AppendedGrapeVarieties() ([]string, bool) {
	if len(m.appendgrape_varieties) == 0 {
		return nil, false
	}
	return m.appendgrape_varieties, true
}

// ClearGrapeVarieties clears the value of the "grape_varieties" field.
func (m *WineMutation) ClearGrapeVarieties() {
	m.grape_varieties = nil
	m.appendgrape_varieties = nil
	m.clearedFields[wine.FieldGrapeVarieties] = struct{}{}
}

// GrapeVarietiesCleared returns if the "grape_varieties" field was cleared in this mutation.
func (m *WineMutation) GrapeVarietiesCleared() bool {
	_, ok := m.clearedFields[wine.FieldGrapeVarieties]
	return ok
}

// ResetGrapeVarieties resets all changes to the "grape_varieties" field.
func (m *WineMutation) ResetGrapeVarieties() {
	m.grape_varieties = nil
	m.appendgrape_varieties = nil
	delete(m.clearedFields, wine.FieldGrapeVarieties)
}

// SetAlcoholContent sets the "alcohol_content" field.
func (m *WineMutation) SetAlcoholContent(f float32) {
	m.alcohol_content = &f
	m.addalcohol_content = nil
}

// AlcoholContent returns the value of the "alcohol_content" field in the mutation.
func (m *WineMutation) AlcoholContent() (r float32, exists bool) {
	v := m.alcohol_content
	if v == nil {
		return
	}
	return *v, true
}

// OldAlcoholContent returns the old "alcohol_content" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldAlcoholContent(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAlcoholContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAlcoholContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAlcoholContent: %w", err)
	}
	return oldValue.AlcoholContent, nil
}

// AddAlcoholContent adds f to the "alcohol_content" field.
func (m *WineMutation) AddAlcoholContent(f float32) {
	if m.addalcohol_content != nil {
		*m.addalcohol_content += f
	} else {
		m.addalcohol_content = &f
	}
}

// AddedAlcoholContent returns the value that was added to the "alcohol_content" field in this mutation.
func (m *WineMutation) AddedAlcoholContent() (r float32, exists bool) {
	v := m.addalcohol_content
	if v == nil {
		return
	}
	return *v, true
}

// ClearAlcoholContent clears the value of the "alcohol_content" field.
func (m *WineMutation) ClearAlcoholContent() {
	m.alcohol_content = nil
	m.addalcohol_content = nil
	m.clearedFields[wine.FieldAlcoholContent] = struct{}{}
}

// AlcoholContentCleared returns if the "alcohol_content" field was cleared in this mutation.
func (m *WineMutation) AlcoholContentCleared() bool {
	_, ok := m.clearedFields[wine.FieldAlcoholContent]
	return ok
}

// ResetAlcoholContent resets all changes to the "alcohol_content" field.
func (m *WineMutation) ResetAlcoholContent() {
	m.alcohol_content = nil
	m.addalcohol_content = nil
	delete(m.clearedFields, wine.FieldAlcoholContent)
}

// SetBottleSize sets the "bottle_size" field.
func (m *WineMutation) SetBottleSize(s string) {
	m.bottle_size = &s
}

// BottleSize returns the value of the "bottle_size" field in the mutation.
func (m *WineMutation) BottleSize() (r string, exists bool) {
	v := m.bottle_size
	if v == nil {
		return
	}
	return *v, true
}

// OldBottleSize returns the old "bottle_size" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldBottleSize(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBottleSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBottleSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBottleSize: %w", err)
	}
	return oldValue.BottleSize, nil
}

// ResetBottleSize resets all changes to the "bottle_size" field.
func (m *WineMutation) ResetBottleSize() {
	m.bottle_size = nil
}

// SetQuantity sets the "quantity" field.
func (m *WineMutation) SetQuantity(i int) {
	m.quantity = &i
	m.addquantity = nil
}

// Quantity returns the value of the "quantity" field in the mutation.
func (m *WineMutation) Quantity() (r int, exists bool) {
	v := m.quantity
	if v == nil {
		return
	}
	return *v, true
}

// OldQuantity returns the old "quantity" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldQuantity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQuantity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQuantity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQuantity: %w", err)
	}
	return oldValue.Quantity, nil
}

// AddQuantity adds i to the "quantity" field.
func (m *WineMutation) AddQuantity(i int) {
	if m.addquantity != nil {
		*m.addquantity += i
	} else {
		m.addquantity = &i
	}
}

// AddedQuantity returns the value that was added to the "quantity" field in this mutation.
func (m *WineMutation) AddedQuantity() (r int, exists bool) {
	v := m.addquantity
	if v == nil {
		return
	}
	return *v, true
}

// ResetQuantity resets all changes to the "quantity" field.
func (m *WineMutation) ResetQuantity() {
	m.quantity = nil
	m.addquantity = nil
}

// SetPurchasePrice sets the "purchase_price" field.
func (m *WineMutation) SetPurchasePrice(f float64) {
	m.purchase_price = &f
	m.addpurchase_price = nil
}

// PurchasePrice returns the value of the "purchase_price" field in the mutation.
func (m *WineMutation) PurchasePrice() (r float64, exists bool) {
	v := m.purchase_price
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchasePrice returns the old "purchase_price" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldPurchasePrice(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchasePrice is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchasePrice requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchasePrice: %w", err)
	}
	return oldValue.PurchasePrice, nil
}

// AddPurchasePrice adds f to the "purchase_price" field.
func (m *WineMutation) AddPurchasePrice(f float64) {
	if m.addpurchase_price != nil {
		*m.addpurchase_price += f
	} else {
		m.addpurchase_price = &f
	}
}

// AddedPurchasePrice returns the value that was added to the "purchase_price" field in this mutation.
func (m *WineMutation) AddedPurchasePrice() (r float64, exists bool) {
	v := m.addpurchase_price
	if v == nil {
		return
	}
	return *v, true
}

// ClearPurchasePrice clears the value of the "purchase_price" field.
func (m *WineMutation) ClearPurchasePrice() {
	m.purchase_price = nil
	m.addpurchase_price = nil
	m.clearedFields[wine.FieldPurchasePrice] = struct{}{}
}

// PurchasePriceCleared returns if the "purchase_price" field was cleared in this mutation.
func (m *WineMutation) PurchasePriceCleared() bool {
	_, ok := m.clearedFields[wine.FieldPurchasePrice]
	return ok
}

// ResetPurchasePrice resets all changes to the "purchase_price" field.
func (m *WineMutation) ResetPurchasePrice() {
	m.purchase_price = nil
	m.addpurchase_price = nil
	delete(m.clearedFields, wine.FieldPurchasePrice)
}

// SetPurchaseDate sets the "purchase_date" field.
func (m *WineMutation) SetPurchaseDate(t time.Time) {
	m.purchase_date = &t
}

// PurchaseDate returns the value of the "purchase_date" field in the mutation.
func (m *WineMutation) PurchaseDate() (r time.Time, exists bool) {
	v := m.purchase_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPurchaseDate returns the old "purchase_date" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldPurchaseDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPurchaseDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPurchaseDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPurchaseDate: %w", err)
	}
	return oldValue.PurchaseDate, nil
}

// ClearPurchaseDate clears the value of the "purchase_date" field.
func (m *WineMutation) ClearPurchaseDate() {
	m.purchase_date = nil
	m.clearedFields[wine.FieldPurchaseDate] = struct{}{}
}

// PurchaseDateCleared returns if the "purchase_date" field was cleared in this mutation.
func (m *WineMutation) PurchaseDateCleared() bool {
	_, ok := m.clearedFields[wine.FieldPurchaseDate]
	return ok
}

// ResetPurchaseDate resets all changes to the "purchase_date" field.
func (m *WineMutation) ResetPurchaseDate() {
	m.purchase_date = nil
	delete(m.clearedFields, wine.FieldPurchaseDate)
}

// SetCurrency sets the "currency" field.
func (m *WineMutation) SetCurrency(s string) {
	m.currency = &s
}

// Currency returns the value of the "currency" field in the mutation.
func (m *WineMutation) Currency() (r string, exists bool) {
	v := m.currency
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrency returns the old "currency" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldCurrency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrency: %w", err)
	}
	return oldValue.Currency, nil
}

// ResetCurrency resets all changes to the "currency" field.
func (m *WineMutation) ResetCurrency() {
	m.currency = nil
}

// SetPersonalRating sets the "personal_rating" field.
func (m *WineMutation) SetPersonalRating(f float32) {
	m.personal_rating = &f
	m.addpersonal_rating = nil
}

// PersonalRating returns the value of the "personal_rating" field in the mutation.
func (m *WineMutation) PersonalRating() (r float32, exists bool) {
	v := m.personal_rating
	if v == nil {
		return
	}
	return *v, true
}

// OldPersonalRating returns the old "personal_rating" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldPersonalRating(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPersonalRating is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPersonalRating requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPersonalRating: %w", err)
	}
	return oldValue.PersonalRating, nil
}

// AddPersonalRating adds f to the "personal_rating" field.
func (m *WineMutation) AddPersonalRating(f float32) {
	if m.addpersonal_rating != nil {
		*m.addpersonal_rating += f
	} else {
		m.addpersonal_rating = &f
	}
}

// AddedPersonalRating returns the value that was added to the "personal_rating" field in this mutation.
func (m *WineMutation) AddedPersonalRating() (r float32, exists bool) {
	v := m.addpersonal_rating
	if v == nil {
		return
	}
	return *v, true
}

// ClearPersonalRating clears the value of the "personal_rating" field.
func (m *WineMutation) ClearPersonalRating() {
	m.personal_rating = nil
	m.addpersonal_rating = nil
	m.clearedFields[wine.FieldPersonalRating] = struct{}{}
}

// PersonalRatingCleared returns if the "personal_rating" field was cleared in this mutation.
func (m *WineMutation) PersonalRatingCleared() bool {
	_, ok := m.clearedFields[wine.FieldPersonalRating]
	return ok
}

// ResetPersonalRating resets all changes to the "personal_rating" field.
func (m *WineMutation) ResetPersonalRating() {
	m.personal_rating = nil
	m.addpersonal_rating = nil
	delete(m.clearedFields, wine.FieldPersonalRating)
}

// SetDrinkingWindowStart sets the "drinking_window_start" field.
func (m *WineMutation) SetDrinkingWindowStart(i int) {
	m.drinking_window_start = &i
	m.adddrinking_window_start = nil
}

// DrinkingWindowStart returns the value of the "drinking_window_start" field in the mutation.
func (m *WineMutation) DrinkingWindowStart() (r int, exists bool) {
	v := m.drinking_window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldDrinkingWindowStart returns the old "drinking_window_start" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldDrinkingWindowStart(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrinkingWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrinkingWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrinkingWindowStart: %w", err)
	}
	return oldValue.DrinkingWindowStart, nil
}

// AddDrinkingWindowStart adds i to the "drinking_window_start" field.
func (m *WineMutation) AddDrinkingWindowStart(i int) {
	if m.adddrinking_window_start != nil {
		*m.adddrinking_window_start += i
	} else {
		m.adddrinking_window_start = &i
	}
}

// AddedDrinkingWindowStart returns the value that was added to the "drinking_window_start" field in this mutation.
func (m *WineMutation) AddedDrinkingWindowStart() (r int, exists bool) {
	v := m.adddrinking_window_start
	if v == nil {
		return
	}
	return *v, true
}

// ClearDrinkingWindowStart clears the value of the "drinking_window_start" field.
func (m *WineMutation) ClearDrinkingWindowStart() {
	m.drinking_window_start = nil
	m.adddrinking_window_start = nil
	m.clearedFields[wine.FieldDrinkingWindowStart] = struct{}{}
}

// DrinkingWindowStartCleared returns if the "drinking_window_start" field was cleared in this mutation.
func (m *WineMutation) DrinkingWindowStartCleared() bool {
	_, ok := m.clearedFields[wine.FieldDrinkingWindowStart]
	return ok
}

// ResetDrinkingWindowStart resets all changes to the "drinking_window_start" field.
func (m *WineMutation) ResetDrinkingWindowStart() {
	m.drinking_window_start = nil
	m.adddrinking_window_start = nil
	delete(m.clearedFields, wine.FieldDrinkingWindowStart)
}

// SetDrinkingWindowEnd sets the "drinking_window_end" field.
func (m *WineMutation) SetDrinkingWindowEnd(i int) {
	m.drinking_window_end = &i
	m.adddrinking_window_end = nil
}

// DrinkingWindowEnd returns the value of the "drinking_window_end" field in the mutation.
func (m *WineMutation) DrinkingWindowEnd() (r int, exists bool) {
	v := m.drinking_window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldDrinkingWindowEnd returns the old "drinking_window_end" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldDrinkingWindowEnd(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDrinkingWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDrinkingWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDrinkingWindowEnd: %w", err)
	}
	return oldValue.DrinkingWindowEnd, nil
}

// AddDrinkingWindowEnd adds i to the "drinking_window_end" field.
func (m *WineMutation) AddDrinkingWindowEnd(i int) {
	if m.adddrinking_window_end != nil {
		*m.adddrinking_window_end += i
	} else {
		m.adddrinking_window_end = &i
	}
}

// AddedDrinkingWindowEnd returns the value that was added to the "drinking_window_end" field in this mutation.
func (m *WineMutation) AddedDrinkingWindowEnd() (r int, exists bool) {
	v := m.adddrinking_window_end
	if v == nil {
		return
	}
	return *v, true
}

// ClearDrinkingWindowEnd clears the value of the "drinking_window_end" field.
func (m *WineMutation) ClearDrinkingWindowEnd() {
	m.drinking_window_end = nil
	m.adddrinking_window_end = nil
	m.clearedFields[wine.FieldDrinkingWindowEnd] = struct{}{}
}

// DrinkingWindowEndCleared returns if the "drinking_window_end" field was cleared in this mutation.
func (m *WineMutation) DrinkingWindowEndCleared() bool {
	_, ok := m.clearedFields[wine.FieldDrinkingWindowEnd]
	return ok
}

// ResetDrinkingWindowEnd resets all changes to the "drinking_window_end" field.
func (m *WineMutation) ResetDrinkingWindowEnd() {
	m.drinking_window_end = nil
	m.adddrinking_window_end = nil
	delete(m.clearedFields, wine.FieldDrinkingWindowEnd)
}

// SetPeakMaturityYear sets the "peak_maturity_year" field.
func (m *WineMutation) SetPeakMaturityYear(i int) {
	m.peak_maturity_year = &i
	m.addpeak_maturity_year = nil
}

// PeakMaturityYear returns the value of the "peak_maturity_year" field in the mutation.
func (m *WineMutation) PeakMaturityYear() (r int, exists bool) {
	v := m.peak_maturity_year
	if v == nil {
		return
	}
	return *v, true
}

// OldPeakMaturityYear returns the old "peak_maturity_year" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldPeakMaturityYear(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPeakMaturityYear is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPeakMaturityYear requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPeakMaturityYear: %w", err)
	}
	return oldValue.PeakMaturityYear, nil
}

// AddPeakMaturityYear adds i to the "peak_maturity_year" field.
func (m *WineMutation) AddPeakMaturityYear(i int) {
	if m.addpeak_maturity_year != nil {
		*m.addpeak_maturity_year += i
	} else {
		m.addpeak_maturity_year = &i
	}
}

// AddedPeakMaturityYear returns the value that was added to the "peak_maturity_year" field in this mutation.
func (m *WineMutation) AddedPeakMaturityYear() (r int, exists bool) {
	v := m.addpeak_maturity_year
	if v == nil {
		return
	}
	return *v, true
}

// ClearPeakMaturityYear clears the value of the "peak_maturity_year" field.
func (m *WineMutation) ClearPeakMaturityYear() {
	m.peak_maturity_year = nil
	m.addpeak_maturity_year = nil
	m.clearedFields[wine.FieldPeakMaturityYear] = struct{}{}
}

// PeakMaturityYearCleared returns if the "peak_maturity_year" field was cleared in this mutation.
func (m *WineMutation) PeakMaturityYearCleared() bool {
	_, ok := m.clearedFields[wine.FieldPeakMaturityYear]
	return ok
}

// ResetPeakMaturityYear resets all changes to the "peak_maturity_year" field.
func (m *WineMutation) ResetPeakMaturityYear() {
	m.peak_maturity_year = nil
	m.addpeak_maturity_year = nil
	delete(m.clearedFields, wine.FieldPeakMaturityYear)
}

// SetTastingSummary sets the "tasting_summary" field.
func (m *WineMutation) SetTastingSummary(s string) {
	m.tasting_summary = &s
}

// TastingSummary returns the value of the "tasting_summary" field in the mutation.
func (m *WineMutation) TastingSummary() (r string, exists bool) {
	v := m.tasting_summary
	if v == nil {
		return
	}
	return *v, true
}

// OldTastingSummary returns the old "tasting_summary" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldTastingSummary(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTastingSummary is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTastingSummary requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTastingSummary: %w", err)
	}
	return oldValue.TastingSummary, nil
}

// ClearTastingSummary clears the value of the "tasting_summary" field.
func (m *WineMutation) ClearTastingSummary() {
	m.tasting_summary = nil
	m.clearedFields[wine.FieldTastingSummary] = struct{}{}
}

// TastingSummaryCleared returns if the "tasting_summary" field was cleared in this mutation.
func (m *WineMutation) TastingSummaryCleared() bool {
	_, ok := m.clearedFields[wine.FieldTastingSummary]
	return ok
}

// ResetTastingSummary resets all changes to the "tasting_summary" field.
func (m *WineMutation) ResetTastingSummary() {
	m.tasting_summary = nil
	delete(m.clearedFields, wine.FieldTastingSummary)
}

// SetFoodPairings sets the "food_pairings" field.
func (m *WineMutation) SetFoodPairings(s []string) {
	m.food_pairings = &s
	m.appendfood_pairings = nil
}

// FoodPairings returns the value of the "food_pairings" field in the mutation.
func (m *WineMutation) FoodPairings() (r []string, exists bool) {
	v := m.food_pairings
	if v == nil {
		return
	}
	return *v, true
}

// OldFoodPairings returns the old "food_pairings" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldFoodPairings(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFoodPairings is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFoodPairings requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFoodPairings: %w", err)
	}
	return oldValue.FoodPairings, nil
}

// AppendFoodPairings adds s to the "food_pairings" field.
func (m *WineMutation) AppendFoodPairings(s []string) {
	m.appendfood_pairings = append(m.appendfood_pairings, s...)
}

// AppendedFoodPairings returns the list of values that were appended to the "food_pairings" field in this mutation.
func (m *WineMutation) AppendedFoodPairings() ([]string, bool) {
	if len(m.appendfood_pairings) == 0 {
		return nil, false
	}
	return m.appendfood_pairings, true
}

// ClearFoodPairings clears the value of the "food_pairings" field.
func (m *WineMutation) ClearFoodPairings() {
	m.food_pairings = nil
	m.appendfood_pairings = nil
	m.clearedFields[wine.FieldFoodPairings] = struct{}{}
}

// FoodPairingsCleared returns if the "food_pairings" field was cleared in this mutation.
func (m *WineMutation) FoodPairingsCleared() bool {
	_, ok := m.clearedFields[wine.FieldFoodPairings]
	return ok
}

// ResetFoodPairings resets all changes to the "food_pairings" field.
func (m *WineMutation) ResetFoodPairings() {
	m.food_pairings = nil
	m.appendfood_pairings = nil
	delete(m.clearedFields, wine.FieldFoodPairings)
}

// SetLocationID sets the "location_id" field.
func (m *WineMutation) SetLocationID(u uuid.UUID) {
	m.location = &u
}

// LocationID returns the value of the "location_id" field in the mutation.
func (m *WineMutation) LocationID() (r uuid.UUID, exists bool) {
	v := m.location
	if v == nil {
		return
	}
	return *v, true
}

// OldLocationID returns the old "location_id" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldLocationID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLocationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLocationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLocationID: %w", err)
	}
	return oldValue.LocationID, nil
}

// ClearLocationID clears the value of the "location_id" field.
func (m *WineMutation) ClearLocationID() {
	m.location = nil
	m.clearedFields[wine.FieldLocationID] = struct{}{}
}

// LocationIDCleared returns if the "location_id" field was cleared in this mutation.
func (m *WineMutation) LocationIDCleared() bool {
	_, ok := m.clearedFields[wine.FieldLocationID]
	return ok
}

// ResetLocationID resets all changes to the "location_id" field.
func (m *WineMutation) ResetLocationID() {
	m.location = nil
	delete(m.clearedFields, wine.FieldLocationID)
}

// SetSystembolagetID sets the "systembolaget_id" field.
func (m *WineMutation) SetSystembolagetID(s string) {
	m.systembolaget_id = &s
}

// SystembolagetID returns the value of the "systembolaget_id" field in the mutation.
func (m *WineMutation) SystembolagetID() (r string, exists bool) {
	v := m.systembolaget_id
	if v == nil {
		return
	}
	return *v, true
}

// OldSystembolagetID returns the old "systembolaget_id" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldSystembolagetID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSystembolagetID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSystembolagetID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSystembolagetID: %w", err)
	}
	return oldValue.SystembolagetID, nil
}

// ClearSystembolagetID clears the value of the "systembolaget_id" field.
func (m *WineMutation) ClearSystembolagetID() {
	m.systembolaget_id = nil
	m.clearedFields[wine.FieldSystembolagetID] = struct{}{}
}

// SystembolagetIDCleared returns if the "systembolaget_id" field was cleared in this mutation.
func (m *WineMutation) SystembolagetIDCleared() bool {
	_, ok := m.clearedFields[wine.FieldSystembolagetID]
	return ok
}

// ResetSystembolagetID resets all changes to the "systembolaget_id" field.
func (m *WineMutation) ResetSystembolagetID() {
	m.systembolaget_id = nil
	delete(m.clearedFields, wine.FieldSystembolagetID)
}

// SetBarcode sets the "barcode" field.
func (m *WineMutation) SetBarcode(s string) {
	m.barcode = &s
}

// Barcode returns the value of the "barcode" field in the mutation.
func (m *WineMutation) Barcode() (r string, exists bool) {
	v := m.barcode
	if v == nil {
		return
	}
	return *v, true
}

// OldBarcode returns the old "barcode" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldBarcode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBarcode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBarcode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBarcode: %w", err)
	}
	return oldValue.Barcode, nil
}

// ClearBarcode clears the value of the "barcode" field.
func (m *WineMutation) ClearBarcode() {
	m.barcode = nil
	m.clearedFields[wine.FieldBarcode] = struct{}{}
}

// BarcodeCleared returns if the "barcode" field was cleared in this mutation.
func (m *WineMutation) BarcodeCleared() bool {
	_, ok := m.clearedFields[wine.FieldBarcode]
	return ok
}

// ResetBarcode resets all changes to the "barcode" field.
func (m *WineMutation) ResetBarcode() {
	m.barcode = nil
	delete(m.clearedFields, wine.FieldBarcode)
}

// SetIsDeleted sets the "is_deleted" field.
func (m *WineMutation) SetIsDeleted(b bool) {
	m.is_deleted = &b
}

// IsDeleted returns the value of the "is_deleted" field in the mutation.
func (m *WineMutation) IsDeleted() (r bool, exists bool) {
	v := m.is_deleted
	if v == nil {
		return
	}
	return *v, true
}

// OldIsDeleted returns the old "is_deleted" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldIsDeleted(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsDeleted is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsDeleted requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsDeleted: %w", err)
	}
	return oldValue.IsDeleted, nil
}

// ResetIsDeleted resets all changes to the "is_deleted" field.
func (m *WineMutation) ResetIsDeleted() {
	m.is_deleted = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *WineMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WineMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WineMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WineMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WineMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Wine entity.
// If the Wine object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WineMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WineMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearLocation clears the "location" edge to the StorageLocation entity.
func (m *WineMutation) ClearLocation() {
	m.clearedlocation = true
	m.clearedFields[wine.FieldLocationID] = struct{}{}
}

// LocationCleared reports if the "location" edge to the StorageLocation entity was cleared.
func (m *WineMutation) LocationCleared() bool {
	return m.LocationIDCleared() || m.clearedlocation
}

// LocationIDs returns the "location" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// LocationID instead. It exists only for internal usage by the builders.
func (m *WineMutation) LocationIDs() (ids []uuid.UUID) {
	if id := m.location; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetLocation resets all changes to the "location" edge.
func (m *WineMutation) ResetLocation() {
	m.location = nil
	m.clearedlocation = false
}

// AddNoteIDs adds the "notes" edge to the TastingNote entity by ids.
func (m *WineMutation) AddNoteIDs(ids ...uuid.UUID) {
	if m.notes == nil {
		m.notes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.notes[ids[i]] = struct{}{}
	}
}

// ClearNotes clears the "notes" edge to the TastingNote entity.
func (m *WineMutation) ClearNotes() {
	m.clearednotes = true
}

// NotesCleared reports if the "notes" edge to the TastingNote entity was cleared.
func (m *WineMutation) NotesCleared() bool {
	return m.clearednotes
}

// RemoveNoteIDs removes the "notes" edge to the TastingNote entity by IDs.
func (m *WineMutation) RemoveNoteIDs(ids ...uuid.UUID) {
	if m.removednotes == nil {
		m.removednotes = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.notes, ids[i])
		m.removednotes[ids[i]] = struct{}{}
	}
}

// RemovedNotes returns the removed IDs of the "notes" edge to the TastingNote entity.
func (m *WineMutation) RemovedNotesIDs() (ids []uuid.UUID) {
	for id := range m.removednotes {
		ids = append(ids, id)
	}
	return
}

// NotesIDs returns the "notes" edge IDs in the mutation.
func (m *WineMutation) NotesIDs() (ids []uuid.UUID) {
	for id := range m.notes {
		ids = append(ids, id)
	}
	return
}

// ResetNotes resets all changes to the "notes" edge.
func (m *WineMutation) ResetNotes() {
	m.notes = nil
	m.clearednotes = false
	m.removednotes = nil
}

// AddJobIDs adds the "jobs" edge to the ScanJob entity by ids.
func (m *WineMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ScanJob entity.
func (m *WineMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ScanJob entity was cleared.
func (m *WineMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ScanJob entity by IDs.
func (m *WineMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ScanJob entity.
func (m *WineMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *WineMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *WineMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the WineMutation builder.
func (m *WineMutation) Where(ps ...predicate.Wine) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WineMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WineMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Wine, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WineMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WineMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Wine).
func (m *WineMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WineMutation) Fields() []string {
	fields := make([]string, 0, 27)
	if m.name != nil {
		fields = append(fields, wine.FieldName)
	}
	if m.producer != nil {
		fields = append(fields, wine.FieldProducer)
	}
	if m.vintage != nil {
		fields = append(fields, wine.FieldVintage)
	}
	if m.wine_type != nil {
		fields = append(fields, wine.FieldWineType)
	}
	if m.country != nil {
		fields = append(fields, wine.FieldCountry)
	}
	if m.region != nil {
		fields = append(fields, wine.FieldRegion)
	}
	if m.sub_region != nil {
		fields = append(fields, wine.FieldSubRegion)
	}
	if m.appellation != nil {
		fields = append(fields, wine.FieldAppellation)
	}
	if m.grape_varieties != nil {
		fields = append(fields, wine.FieldGrapeVarieties)
	}
	if m.alcohol_content != nil {
		fields = append(fields, wine.FieldAlcoholContent)
	}
	if m.bottle_size != nil {
		fields = append(fields, wine.FieldBottleSize)
	}
	if m.quantity != nil {
		fields = append(fields, wine.FieldQuantity)
	}
	if m.purchase_price != nil {
		fields = append(fields, wine.FieldPurchasePrice)
	}
	if m.purchase_date != nil {
		fields = append(fields, wine.FieldPurchaseDate)
	}
	if m.currency != nil {
		fields = append(fields, wine.FieldCurrency)
	}
	if m.personal_rating != nil {
		fields = append(fields, wine.FieldPersonalRating)
	}
	if m.drinking_window_start != nil {
		fields = append(fields, wine.FieldDrinkingWindowStart)
	}
	if m.drinking_window_end != nil {
		fields = append(fields, wine.FieldDrinkingWindowEnd)
	}
	if m.peak_maturity_year != nil {
		fields = append(fields, wine.FieldPeakMaturityYear)
	}
	if m.tasting_summary != nil {
		fields = append(fields, wine.FieldTastingSummary)
	}
	if m.food_pairings != nil {
		fields = append(fields, wine.FieldFoodPairings)
	}
	if m.location != nil {
		fields = append(fields, wine.FieldLocationID)
	}
	if m.systembolaget_id != nil {
		fields = append(fields, wine.FieldSystembolagetID)
	}
	if m.barcode != nil {
		fields = append(fields, wine.FieldBarcode)
	}
	if m.is_deleted != nil {
		fields = append(fields, wine.FieldIsDeleted)
	}
	if m.created_at != nil {
		fields = append(fields, wine.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, wine.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WineMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case wine.FieldName:
		return m.Name()
	case wine.FieldProducer:
		return m.Producer()
	case wine.FieldVintage:
		return m.Vintage()
	case wine.FieldWineType:
		return m.WineType()
	case wine.FieldCountry:
		return m.Country()
	case wine.FieldRegion:
		return m.Region()
	case wine.FieldSubRegion:
		return m.SubRegion()
	case wine.FieldAppellation:
		return m.Appellation()
	case wine.FieldGrapeVarieties:
		return m.GrapeVarieties()
	case wine.FieldAlcoholContent:
		return m.AlcoholContent()
	case wine.FieldBottleSize:
		return m.BottleSize()
	case wine.FieldQuantity:
		return m.Quantity()
	case wine.FieldPurchasePrice:
		return m.PurchasePrice()
	case wine.FieldPurchaseDate:
		return m.PurchaseDate()
	case wine.FieldCurrency:
		return m.Currency()
	case wine.FieldPersonalRating:
		return m.PersonalRating()
	case wine.FieldDrinkingWindowStart:
		return m.DrinkingWindowStart()
	case wine.FieldDrinkingWindowEnd:
		return m.DrinkingWindowEnd()
	case wine.FieldPeakMaturityYear:
		return m.PeakMaturityYear()
	case wine.FieldTastingSummary:
		return m.TastingSummary()
	case wine.FieldFoodPairings:
		return m.FoodPairings()
	case wine.FieldLocationID:
		return m.LocationID()
	case wine.FieldSystembolagetID:
		return m.SystembolagetID()
	case wine.FieldBarcode:
		return m.Barcode()
	case wine.FieldIsDeleted:
		return m.IsDeleted()
	case wine.FieldCreatedAt:
		return m.CreatedAt()
	case wine.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WineMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case wine.FieldName:
		return m.OldName(ctx)
	case wine.FieldProducer:
		return m.OldProducer(ctx)
	case wine.FieldVintage:
		return m.OldVintage(ctx)
	case wine.FieldWineType:
		return m.OldWineType(ctx)
	case wine.FieldCountry:
		return m.OldCountry(ctx)
	case wine.FieldRegion:
		return m.OldRegion(ctx)
	case wine.FieldSubRegion:
		return m.OldSubRegion(ctx)
	case wine.FieldAppellation:
		return m.OldAppellation(ctx)
	case wine.FieldGrapeVarieties:
		return m.OldGrapeVarieties(ctx)
	case wine.FieldAlcoholContent:
		return m.OldAlcoholContent(ctx)
	case wine.FieldBottleSize:
		return m.OldBottleSize(ctx)
	case wine.FieldQuantity:
		return m.OldQuantity(ctx)
	case wine.FieldPurchasePrice:
		return m.OldPurchasePrice(ctx)
	case wine.FieldPurchaseDate:
		return m.OldPurchaseDate(ctx)
	case wine.FieldCurrency:
		return m.OldCurrency(ctx)
	case wine.FieldPersonalRating:
		return m.OldPersonalRating(ctx)
	case wine.FieldDrinkingWindowStart:
		return m.OldDrinkingWindowStart(ctx)
	case wine.FieldDrinkingWindowEnd:
		return m.OldDrinkingWindowEnd(ctx)
	case wine.FieldPeakMaturityYear:
		return m.OldPeakMaturityYear(ctx)
	case wine.FieldTastingSummary:
		return m.OldTastingSummary(ctx)
	case wine.FieldFoodPairings:
		return m.OldFoodPairings(ctx)
	case wine.FieldLocationID:
		return m.OldLocationID(ctx)
	case wine.FieldSystembolagetID:
		return m.OldSystembolagetID(ctx)
	case wine.FieldBarcode:
		return m.OldBarcode(ctx)
	case wine.FieldIsDeleted:
		return m.OldIsDeleted(ctx)
	case wine.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case wine.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Wine field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WineMutation) SetField(name string, value ent.Value) error {
	switch name {
	case wine.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case wine.FieldProducer:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProducer(v)
		return nil
	case wine.FieldVintage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVintage(v)
		return nil
	case wine.FieldWineType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWineType(v)
		return nil
	case wine.FieldCountry:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCountry(v)
		return nil
	case wine.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case wine.FieldSubRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubRegion(v)
		return nil
	case wine.FieldAppellation:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAppellation(v)
		return nil
	case wine.FieldGrapeVarieties:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrapeVarieties(v)
		return nil
	case wine.FieldAlcoholContent:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAlcoholContent(v)
		return nil
	case wine.FieldBottleSize:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBottleSize(v)
		return nil
	case wine.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQuantity(v)
		return nil
	case wine.FieldPurchasePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchasePrice(v)
		return nil
	case wine.FieldPurchaseDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPurchaseDate(v)
		return nil
	case wine.FieldCurrency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrency(v)
		return nil
	case wine.FieldPersonalRating:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPersonalRating(v)
		return nil
	case wine.FieldDrinkingWindowStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrinkingWindowStart(v)
		return nil
	case wine.FieldDrinkingWindowEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDrinkingWindowEnd(v)
		return nil
	case wine.FieldPeakMaturityYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPeakMaturityYear(v)
		return nil
	case wine.FieldTastingSummary:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTastingSummary(v)
		return nil
	case wine.FieldFoodPairings:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFoodPairings(v)
		return nil
	case wine.FieldLocationID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLocationID(v)
		return nil
	case wine.FieldSystembolagetID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSystembolagetID(v)
		return nil
	case wine.FieldBarcode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBarcode(v)
		return nil
	case wine.FieldIsDeleted:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsDeleted(v)
		return nil
	case wine.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case wine.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Wine field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WineMutation) AddedFields() []string {
	var fields []string
	if m.addvintage != nil {
		fields = append(fields, wine.FieldVintage)
	}
	if m.addalcohol_content != nil {
		fields = append(fields, wine.FieldAlcoholContent)
	}
	if m.addquantity != nil {
		fields = append(fields, wine.FieldQuantity)
	}
	if m.addpurchase_price != nil {
		fields = append(fields, wine.FieldPurchasePrice)
	}
	if m.addpersonal_rating != nil {
		fields = append(fields, wine.FieldPersonalRating)
	}
	if m.adddrinking_window_start != nil {
		fields = append(fields, wine.FieldDrinkingWindowStart)
	}
	if m.adddrinking_window_end != nil {
		fields = append(fields, wine.FieldDrinkingWindowEnd)
	}
	if m.addpeak_maturity_year != nil {
		fields = append(fields, wine.FieldPeakMaturityYear)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WineMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case wine.FieldVintage:
		return m.AddedVintage()
	case wine.FieldAlcoholContent:
		return m.AddedAlcoholContent()
	case wine.FieldQuantity:
		return m.AddedQuantity()
	case wine.FieldPurchasePrice:
		return m.AddedPurchasePrice()
	case wine.FieldPersonalRating:
		return m.AddedPersonalRating()
	case wine.FieldDrinkingWindowStart:
		return m.AddedDrinkingWindowStart()
	case wine.FieldDrinkingWindowEnd:
		return m.AddedDrinkingWindowEnd()
	case wine.FieldPeakMaturityYear:
		return m.AddedPeakMaturityYear()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WineMutation) AddField(name string, value ent.Value) error {
	switch name {
	case wine.FieldVintage:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVintage(v)
		return nil
	case wine.FieldAlcoholContent:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAlcoholContent(v)
		return nil
	case wine.FieldQuantity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddQuantity(v)
		return nil
	case wine.FieldPurchasePrice:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPurchasePrice(v)
		return nil
	case wine.FieldPersonalRating:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPersonalRating(v)
		return nil
	case wine.FieldDrinkingWindowStart:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrinkingWindowStart(v)
		return nil
	case wine.FieldDrinkingWindowEnd:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDrinkingWindowEnd(v)
		return nil
	case wine.FieldPeakMaturityYear:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPeakMaturityYear(v)
		return nil
	}
	return fmt.Errorf("unknown Wine numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WineMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(wine.FieldVintage) {
		fields = append(fields, wine.FieldVintage)
	}
	if m.FieldCleared(wine.FieldCountry) {
		fields = append(fields, wine.FieldCountry)
	}
	if m.FieldCleared(wine.FieldRegion) {
		fields = append(fields, wine.FieldRegion)
	}
	if m.FieldCleared(wine.FieldSubRegion) {
		fields = append(fields, wine.FieldSubRegion)
	}
	if m.FieldCleared(wine.FieldAppellation) {
		fields = append(fields, wine.FieldAppellation)
	}
	if m.FieldCleared(wine.FieldGrapeVarieties) {
		fields = append(fields, wine.FieldGrapeVarieties)
	}
	if m.FieldCleared(wine.FieldAlcoholContent) {
		fields = append(fields, wine.FieldAlcoholContent)
	}
	if m.FieldCleared(wine.FieldPurchasePrice) {
		fields = append(fields, wine.FieldPurchasePrice)
	}
	if m.FieldCleared(wine.FieldPurchaseDate) {
		fields = append(fields, wine.FieldPurchaseDate)
	}
	if m.FieldCleared(wine.FieldPersonalRating) {
		fields = append(fields, wine.FieldPersonalRating)
	}
	if m.FieldCleared(wine.FieldDrinkingWindowStart) {
		fields = append(fields, wine.FieldDrinkingWindowStart)
	}
	if m.FieldCleared(wine.FieldDrinkingWindowEnd) {
		fields = append(fields, wine.FieldDrinkingWindowEnd)
	}
	if m.FieldCleared(wine.FieldPeakMaturityYear) {
		fields = append(fields, wine.FieldPeakMaturityYear)
	}
	if m.FieldCleared(wine.FieldTastingSummary) {
		fields = append(fields, wine.FieldTastingSummary)
	}
	if m.FieldCleared(wine.FieldFoodPairings) {
		fields = append(fields, wine.FieldFoodPairings)
	}
	if m.FieldCleared(wine.FieldLocationID) {
		fields = append(fields, wine.FieldLocationID)
	}
	if m.FieldCleared(wine.FieldSystembolagetID) {
		fields = append(fields, wine.FieldSystembolagetID)
	}
	if m.FieldCleared(wine.FieldBarcode) {
		fields = append(fields, wine.FieldBarcode)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WineMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WineMutation) ClearField(name string) error {
	switch name {
	case wine.FieldVintage:
		m.ClearVintage()
		return nil
	case wine.FieldCountry:
		m.ClearCountry()
		return nil
	case wine.FieldRegion:
		m.ClearRegion()
		return nil
	case wine.FieldSubRegion:
		m.ClearSubRegion()
		return nil
	case wine.FieldAppellation:
		m.ClearAppellation()
		return nil
	case wine.FieldGrapeVarieties:
		m.ClearGrapeVarieties()
		return nil
	case wine.FieldAlcoholContent:
		m.ClearAlcoholContent()
		return nil
	case wine.FieldPurchasePrice:
		m.ClearPurchasePrice()
		return nil
	case wine.FieldPurchaseDate:
		m.ClearPurchaseDate()
		return nil
	case wine.FieldPersonalRating:
		m.ClearPersonalRating()
		return nil
	case wine.FieldDrinkingWindowStart:
		m.ClearDrinkingWindowStart()
		return nil
	case wine.FieldDrinkingWindowEnd:
		m.ClearDrinkingWindowEnd()
		return nil
	case wine.FieldPeakMaturityYear:
		m.ClearPeakMaturityYear()
		return nil
	case wine.FieldTastingSummary:
		m.ClearTastingSummary()
		return nil
	case wine.FieldFoodPairings:
		m.ClearFoodPairings()
		return nil
	case wine.FieldLocationID:
		m.ClearLocationID()
		return nil
	case wine.FieldSystembolagetID:
		m.ClearSystembolagetID()
		return nil
	case wine.FieldBarcode:
		m.ClearBarcode()
		return nil
	}
	return fmt.Errorf("unknown Wine nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WineMutation) ResetField(name string) error {
	switch name {
	case wine.FieldName:
		m.ResetName()
		return nil
	case wine.FieldProducer:
		m.ResetProducer()
		return nil
	case wine.FieldVintage:
		m.ResetVintage()
		return nil
	case wine.FieldWineType:
		m.ResetWineType()
		return nil
	case wine.FieldCountry:
		m.ResetCountry()
		return nil
	case wine.FieldRegion:
		m.ResetRegion()
		return nil
	case wine.FieldSubRegion:
		m.ResetSubRegion()
		return nil
	case wine.FieldAppellation:
		m.ResetAppellation()
		return nil
	case wine.FieldGrapeVarieties:
		m.ResetGrapeVarieties()
		return nil
	case wine.FieldAlcoholContent:
		m.ResetAlcoholContent()
		return nil
	case wine.FieldBottleSize:
		m.ResetBottleSize()
		return nil
	case wine.FieldQuantity:
		m.ResetQuantity()
		return nil
	case wine.FieldPurchasePrice:
		m.ResetPurchasePrice()
		return nil
	case wine.FieldPurchaseDate:
		m.ResetPurchaseDate()
		return nil
	case wine.FieldCurrency:
		m.ResetCurrency()
		return nil
	case wine.FieldPersonalRating:
		m.ResetPersonalRating()
		return nil
	case wine.FieldDrinkingWindowStart:
		m.ResetDrinkingWindowStart()
		return nil
	case wine.FieldDrinkingWindowEnd:
		m.ResetDrinkingWindowEnd()
		return nil
	case wine.FieldPeakMaturityYear:
		m.ResetPeakMaturityYear()
		return nil
	case wine.FieldTastingSummary:
		m.ResetTastingSummary()
		return nil
	case wine.FieldFoodPairings:
		m.ResetFoodPairings()
		return nil
	case wine.FieldLocationID:
		m.ResetLocationID()
		return nil
	case wine.FieldSystembolagetID:
		m.ResetSystembolagetID()
		return nil
	case wine.FieldBarcode:
		m.ResetBarcode()
		return nil
	case wine.FieldIsDeleted:
		m.ResetIsDeleted()
		return nil
	case wine.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case wine.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Wine field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WineMutation) AddedEdges() []string {
	edges := make([]string, 0, 3)
	if m.location != nil {
		edges = append(edges, wine.EdgeLocation)
	}
	if m.notes != nil {
		edges = append(edges, wine.EdgeNotes)
	}
	if m.jobs != nil {
		edges = append(edges, wine.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WineMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case wine.EdgeLocation:
		if id := m.location; id != nil {
			return []ent.Value{*id}
		}
	case wine.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.notes))
		for id := range m.notes {
			ids = append(ids, id)
		}
		return ids
	case wine.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WineMutation) RemovedEdges() []string {
	edges := make([]string, 0, 3)
	if m.removednotes != nil {
		edges = append(edges, wine.EdgeNotes)
	}
	if m.removedjobs != nil {
		edges = append(edges, wine.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WineMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case wine.EdgeNotes:
		ids := make([]ent.Value, 0, len(m.removednotes))
		for id := range m.removednotes {
			ids = append(ids, id)
		}
		return ids
	case wine.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WineMutation) ClearedEdges() []string {
	edges := make([]string, 0, 3)
	if m.clearedlocation {
		edges = append(edges, wine.EdgeLocation)
	}
	if m.clearednotes {
		edges = append(edges, wine.EdgeNotes)
	}
	if m.clearedjobs {
		edges = append(edges, wine.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WineMutation) EdgeCleared(name string) bool {
	switch name {
	case wine.EdgeLocation:
		return m.clearedlocation
	case wine.EdgeNotes:
		return m.clearednotes
	case wine.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WineMutation) ClearEdge(name string) error {
	switch name {
	case wine.EdgeLocation:
		m.ClearLocation()
		return nil
	}
	return fmt.Errorf("unknown Wine unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WineMutation) ResetEdge(name string) error {
	switch name {
	case wine.EdgeLocation:
		m.ResetLocation()
		return nil
	case wine.EdgeNotes:
		m.ResetNotes()
		return nil
	case wine.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Wine edge %s", name)
}
