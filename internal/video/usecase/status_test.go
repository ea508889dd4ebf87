package usecase

import (
	"context"
	"strings"
	"testing"
	"time"

	channelRepo "tubeline-api/internal/channel/repository"
	"tubeline-api/internal/model"
	userRepo "tubeline-api/internal/user/repository"
	"tubeline-api/internal/video"
	"tubeline-api/internal/video/repository"
	"tubeline-api/pkg/paginator"
	"tubeline-api/pkg/whatsapp"
)

type nopLogger struct{}

func (nopLogger) Debug(ctx context.Context, arg ...any)                    {}
func (nopLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Info(ctx context.Context, arg ...any)                     {}
func (nopLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Warn(ctx context.Context, arg ...any)                     {}
func (nopLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (nopLogger) Error(ctx context.Context, arg ...any)                    {}
func (nopLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (nopLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (nopLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}

type fakeRepo struct {
	videos            map[string]model.Video
	updateStatusCalls int
}

func (f *fakeRepo) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Video, paginator.Paginator, error) {
	var out []model.Video
	for _, v := range f.videos {
		out = append(out, v)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (f *fakeRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Video, error) {
	v, ok := f.videos[id]
	if !ok {
		return model.Video{}, repository.ErrNotFound
	}
	return v, nil
}

func (f *fakeRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Video, error) {
	v := opts.Video
	if v.ID == "" {
		v.ID = "generated"
	}
	f.videos[v.ID] = v
	return v, nil
}

func (f *fakeRepo) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Video, error) {
	if _, ok := f.videos[opts.Video.ID]; !ok {
		return model.Video{}, repository.ErrNotFound
	}
	f.videos[opts.Video.ID] = opts.Video
	return opts.Video, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, sc model.Scope, opts repository.UpdateStatusOptions) (model.Video, error) {
	f.updateStatusCalls++
	v, ok := f.videos[opts.ID]
	if !ok {
		return model.Video{}, repository.ErrNotFound
	}
	if opts.ExpectedStatus != nil && v.Status != *opts.ExpectedStatus {
		return model.Video{}, repository.ErrStatusMismatch
	}
	v.Status = opts.Status
	f.videos[opts.ID] = v
	return v, nil
}

func (f *fakeRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := f.videos[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.videos, id)
	return nil
}

func (f *fakeRepo) ListComments(ctx context.Context, sc model.Scope, videoID string) ([]model.Comment, error) {
	return nil, nil
}

func (f *fakeRepo) CreateComment(ctx context.Context, sc model.Scope, opts repository.CreateCommentOptions) (model.Comment, error) {
	return opts.Comment, nil
}

type fakePendingStore struct {
	byPrincipal map[string]video.PendingTransition
}

func pendingTestKey(sc model.Scope) string {
	return sc.CompanyID + ":" + sc.UserID
}

func (f *fakePendingStore) Put(ctx context.Context, sc model.Scope, pt video.PendingTransition) (*video.PendingTransition, error) {
	key := pendingTestKey(sc)
	var replaced *video.PendingTransition
	if old, ok := f.byPrincipal[key]; ok {
		replaced = &old
	}
	f.byPrincipal[key] = pt
	return replaced, nil
}

func (f *fakePendingStore) Take(ctx context.Context, sc model.Scope) (video.PendingTransition, error) {
	key := pendingTestKey(sc)
	pt, ok := f.byPrincipal[key]
	if !ok {
		return video.PendingTransition{}, repository.ErrNotFound
	}
	delete(f.byPrincipal, key)
	return pt, nil
}

func (f *fakePendingStore) Peek(ctx context.Context, sc model.Scope) (video.PendingTransition, error) {
	pt, ok := f.byPrincipal[pendingTestKey(sc)]
	if !ok {
		return video.PendingTransition{}, repository.ErrNotFound
	}
	return pt, nil
}

type fakeChannelRepo struct{}

func (fakeChannelRepo) Get(ctx context.Context, sc model.Scope, opts channelRepo.GetOptions) ([]model.Channel, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}
func (fakeChannelRepo) List(ctx context.Context, sc model.Scope, opts channelRepo.ListOptions) ([]model.Channel, error) {
	out := make([]model.Channel, len(opts.Filter.IDs))
	for i, id := range opts.Filter.IDs {
		out[i] = model.Channel{ID: id, Name: "channel " + id}
	}
	return out, nil
}
func (fakeChannelRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Channel, error) {
	return model.Channel{ID: id}, nil
}
func (fakeChannelRepo) Create(ctx context.Context, sc model.Scope, opts channelRepo.CreateOptions) (model.Channel, error) {
	return opts.Channel, nil
}
func (fakeChannelRepo) Update(ctx context.Context, sc model.Scope, opts channelRepo.UpdateOptions) (model.Channel, error) {
	return opts.Channel, nil
}
func (fakeChannelRepo) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }

type fakeUserRepo struct {
	users map[string]model.User
}

func (f *fakeUserRepo) Get(ctx context.Context, sc model.Scope, opts userRepo.GetOptions) ([]model.User, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}
func (f *fakeUserRepo) List(ctx context.Context, sc model.Scope, opts userRepo.ListOptions) ([]model.User, error) {
	var out []model.User
	for _, id := range opts.Filter.IDs {
		if u, ok := f.users[id]; ok {
			out = append(out, u)
		}
	}
	return out, nil
}
func (f *fakeUserRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.User, error) {
	u, ok := f.users[id]
	if !ok {
		return model.User{}, userRepo.ErrNotFound
	}
	return u, nil
}
func (f *fakeUserRepo) GetOne(ctx context.Context, sc model.Scope, opts userRepo.GetOneOptions) (model.User, error) {
	return model.User{}, userRepo.ErrNotFound
}
func (f *fakeUserRepo) Create(ctx context.Context, sc model.Scope, opts userRepo.CreateOptions) (model.User, error) {
	return opts.User, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, sc model.Scope, opts userRepo.UpdateOptions) (model.User, error) {
	return opts.User, nil
}
func (f *fakeUserRepo) Delete(ctx context.Context, sc model.Scope, id string) error { return nil }

type fakeWhatsApp struct {
	sentTo []string
}

func (f *fakeWhatsApp) SendText(ctx context.Context, to, body string) error {
	f.sentTo = append(f.sentTo, to)
	return nil
}
func (f *fakeWhatsApp) SendTemplate(ctx context.Context, to, name, languageCode string, components []whatsapp.TemplateComponent) error {
	return nil
}
func (f *fakeWhatsApp) ReportBug(ctx context.Context, message string) error { return nil }
func (f *fakeWhatsApp) Close() error                                        { return nil }

type fakeEncrypter struct{}

func (fakeEncrypter) Encrypt(plaintext string) (string, error) { return "enc:" + plaintext, nil }
func (fakeEncrypter) Decrypt(ciphertext string) (string, error) {
	return strings.TrimPrefix(ciphertext, "enc:"), nil
}

func strp(s string) *string { return &s }
func boolp(b bool) *bool    { return &b }

func newTestUsecase(repo *fakeRepo, pending *fakePendingStore, users *fakeUserRepo, wa *fakeWhatsApp) *usecase {
	return &usecase{
		l:           nopLogger{},
		repo:        repo,
		pending:     pending,
		channelRepo: fakeChannelRepo{},
		userRepo:    users,
		wa:          wa,
		enc:         fakeEncrypter{},
		clock:       func() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) },
	}
}

func seedVideo(status model.Status) model.Video {
	return model.Video{
		ID:             "vid-1",
		CompanyID:      "co-1",
		ChannelID:      "ch-1",
		Title:          "How rivers form",
		Status:         status,
		ScriptWriterID: strp("fw-script"),
		NarratorID:     strp("fw-narr"),
		EditorID:       strp("fw-edit"),
		ThumbMakerID:   strp("fw-thumb"),
	}
}

func admin() model.Scope {
	return model.Scope{UserID: "adm-1", CompanyID: "co-1", Kind: model.PrincipalKindUser}
}

func TestChangeStatusHandOffSuspends(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusPending)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	users := &fakeUserRepo{users: map[string]model.User{}}
	wa := &fakeWhatsApp{}
	uc := newTestUsecase(repo, pending, users, wa)

	out, err := uc.ChangeStatus(context.Background(), admin(), video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusScriptRequested,
	})
	if err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}
	if !out.Pending {
		t.Fatal("expected transition to be suspended")
	}
	if out.PendingTransition == nil || out.PendingTransition.TargetStatus != model.StatusScriptRequested {
		t.Errorf("pending transition = %+v", out.PendingTransition)
	}
	if repo.updateStatusCalls != 0 {
		t.Errorf("updateStatusCalls = %d, want 0", repo.updateStatusCalls)
	}
	if repo.videos["vid-1"].Status != model.StatusPending {
		t.Errorf("status = %s, want unchanged PENDING", repo.videos["vid-1"].Status)
	}
}

func TestResolvePendingDeclineStillCommits(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusPending)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	users := &fakeUserRepo{users: map[string]model.User{}}
	wa := &fakeWhatsApp{}
	uc := newTestUsecase(repo, pending, users, wa)
	sc := admin()

	if _, err := uc.ChangeStatus(context.Background(), sc, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusScriptRequested,
	}); err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}

	out, err := uc.ResolvePending(context.Background(), sc, video.ResolvePendingInput{SendMessage: false})
	if err != nil {
		t.Fatalf("ResolvePending() error = %v", err)
	}
	if out.Video.Status != model.StatusScriptRequested {
		t.Errorf("status = %s, want SCRIPT_REQUESTED", out.Video.Status)
	}
	if out.NotificationSent {
		t.Error("declined prompt must not send a notification")
	}
	if len(wa.sentTo) != 0 {
		t.Errorf("sentTo = %v, want none", wa.sentTo)
	}
}

func TestResolvePendingAcceptSendsToAssignee(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusPending)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	users := &fakeUserRepo{users: map[string]model.User{
		"fw-script": {ID: "fw-script", Name: "Ana", PhoneEncrypted: strp("enc:+5511999990000")},
	}}
	wa := &fakeWhatsApp{}
	uc := newTestUsecase(repo, pending, users, wa)
	sc := admin()

	if _, err := uc.ChangeStatus(context.Background(), sc, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusScriptRequested,
	}); err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}

	out, err := uc.ResolvePending(context.Background(), sc, video.ResolvePendingInput{SendMessage: true})
	if err != nil {
		t.Fatalf("ResolvePending() error = %v", err)
	}
	if !out.NotificationSent {
		t.Error("expected notification to be sent")
	}
	if len(wa.sentTo) != 1 || wa.sentTo[0] != "+5511999990000" {
		t.Errorf("sentTo = %v, want decrypted assignee phone", wa.sentTo)
	}
}

func TestChangeStatusDenyHasNoSideEffects(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusNarrationInProgress)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	uc := newTestUsecase(repo, pending, &fakeUserRepo{users: map[string]model.User{}}, &fakeWhatsApp{})

	narrator := model.Scope{
		UserID: "fw-narr", CompanyID: "co-1",
		Kind: model.PrincipalKindFreelancer, Role: model.RoleNarrator,
	}

	_, err := uc.ChangeStatus(context.Background(), narrator, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusEditingRequested,
	})
	if err != video.ErrInsufficientPermission {
		t.Fatalf("ChangeStatus() error = %v, want ErrInsufficientPermission", err)
	}
	if repo.updateStatusCalls != 0 {
		t.Errorf("updateStatusCalls = %d, want 0", repo.updateStatusCalls)
	}
	if repo.videos["vid-1"].Status != model.StatusNarrationInProgress {
		t.Error("denied transition must not mutate the video")
	}
}

func TestChangeStatusNonHandOffCommitsImmediately(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusNarrationInProgress)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	wa := &fakeWhatsApp{}
	uc := newTestUsecase(repo, pending, &fakeUserRepo{users: map[string]model.User{}}, wa)

	narrator := model.Scope{
		UserID: "fw-narr", CompanyID: "co-1",
		Kind: model.PrincipalKindFreelancer, Role: model.RoleNarrator,
	}

	out, err := uc.ChangeStatus(context.Background(), narrator, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusNarrationDone,
	})
	if err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}
	if out.Pending {
		t.Error("non hand-off target must not prompt")
	}
	if out.Video.Status != model.StatusNarrationDone {
		t.Errorf("status = %s, want NARRATION_DONE", out.Video.Status)
	}
	if len(wa.sentTo) != 0 {
		t.Errorf("sentTo = %v, want none", wa.sentTo)
	}
}

func TestChangeStatusReplacesPendingAndSignals(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusPending)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	uc := newTestUsecase(repo, pending, &fakeUserRepo{users: map[string]model.User{}}, &fakeWhatsApp{})
	sc := admin()

	first, err := uc.ChangeStatus(context.Background(), sc, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusScriptRequested,
	})
	if err != nil {
		t.Fatalf("first ChangeStatus() error = %v", err)
	}
	if first.Replaced {
		t.Error("first suspension must not report a replacement")
	}

	second, err := uc.ChangeStatus(context.Background(), sc, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusNarrationRequested,
	})
	if err != nil {
		t.Fatalf("second ChangeStatus() error = %v", err)
	}
	if !second.Replaced {
		t.Error("second suspension must signal it replaced the first")
	}
	if pt, err := pending.Peek(context.Background(), sc); err != nil || pt.TargetStatus != model.StatusNarrationRequested {
		t.Errorf("pending = %+v, %v; want NARRATION_REQUESTED", pt, err)
	}
}

func TestChangeStatusExpectedStatusConflict(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusScriptDone)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	uc := newTestUsecase(repo, pending, &fakeUserRepo{users: map[string]model.User{}}, &fakeWhatsApp{})

	expected := model.StatusScriptInProgress
	_, err := uc.ChangeStatus(context.Background(), admin(), video.ChangeStatusInput{
		VideoID:        "vid-1",
		Status:         model.StatusScriptDone,
		ExpectedStatus: &expected,
	})
	if err != video.ErrStatusConflict {
		t.Fatalf("ChangeStatus() error = %v, want ErrStatusConflict", err)
	}
}

func TestResolvePendingWithoutPrompt(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	uc := newTestUsecase(repo, pending, &fakeUserRepo{users: map[string]model.User{}}, &fakeWhatsApp{})

	_, err := uc.ResolvePending(context.Background(), admin(), video.ResolvePendingInput{SendMessage: true})
	if err != video.ErrNoPendingTransition {
		t.Fatalf("ResolvePending() error = %v, want ErrNoPendingTransition", err)
	}
}

func TestResolvePendingConflictsWhenVideoMoved(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusPending)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	uc := newTestUsecase(repo, pending, &fakeUserRepo{users: map[string]model.User{}}, &fakeWhatsApp{})
	sc := admin()

	if _, err := uc.ChangeStatus(context.Background(), sc, video.ChangeStatusInput{
		VideoID: "vid-1",
		Status:  model.StatusScriptRequested,
	}); err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}

	// The video moves while the prompt is open.
	v := repo.videos["vid-1"]
	v.Status = model.StatusScriptInProgress
	repo.videos["vid-1"] = v

	_, err := uc.ResolvePending(context.Background(), sc, video.ResolvePendingInput{SendMessage: false})
	if err != video.ErrStatusConflict {
		t.Fatalf("ResolvePending() error = %v, want ErrStatusConflict", err)
	}
}

func TestChangeStatusSendMessageProvidedSkipsPrompt(t *testing.T) {
	repo := &fakeRepo{videos: map[string]model.Video{"vid-1": seedVideo(model.StatusScriptDone)}}
	pending := &fakePendingStore{byPrincipal: map[string]video.PendingTransition{}}
	users := &fakeUserRepo{users: map[string]model.User{
		"fw-narr": {ID: "fw-narr", Name: "Rui", PhoneEncrypted: strp("enc:+5511888880000")},
	}}
	wa := &fakeWhatsApp{}
	uc := newTestUsecase(repo, pending, users, wa)

	out, err := uc.ChangeStatus(context.Background(), admin(), video.ChangeStatusInput{
		VideoID:     "vid-1",
		Status:      model.StatusNarrationRequested,
		SendMessage: boolp(true),
	})
	if err != nil {
		t.Fatalf("ChangeStatus() error = %v", err)
	}
	if out.Pending {
		t.Error("answered request must not suspend")
	}
	if !out.NotificationSent || len(wa.sentTo) != 1 {
		t.Errorf("notification sent = %v, sentTo = %v", out.NotificationSent, wa.sentTo)
	}
}
