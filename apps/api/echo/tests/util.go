package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	. "github.com/aryanch/projtrack/apps/api/echo"
	"github.com/aryanch/projtrack/core"
	"github.com/aryanch/projtrack/core/person"
	"github.com/aryanch/projtrack/core/task"
	inmemdb "github.com/aryanch/projtrack/storage/database/inmem"
	testutil "github.com/aryanch/projtrack/tests"
)

var (
	personRepo person.Repository
	taskRepo   task.Repository
)

func setup(t *testing.T) Server {
	// set up DB & repos
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setup() failed: %v", err)
	}
	personRepo = inmemdb.NewPersonRepository(db)
	taskRepo = inmemdb.NewTaskRepository(db)

	// set up services
	personSvc := person.NewService(personRepo)
	taskSvc := task.NewService(taskRepo, personRepo)

	// set up validators
	validate := validator.New()
	lang := en.New()
	uni := ut.New(lang, lang)
	translator, _ := uni.GetTranslator("en")
	core.InitValidators(validate, translator)
	person.InitValidators(validate, translator)
	task.InitValidators(validate, translator)

	// set up server
	return NewServer(
		ServerDeps{
			Conf:           &core.Config{Debug: true, AppName: "ProjTrack", FrontendBaseURL: "http://localhost:3000"},
			Logger:         testutil.NewLogger(t),
			TaskSvc:        taskSvc,
			PersonSvc:      personSvc,
			Validate:       validate,
			Translator:     translator,
			DisableReqLogs: true,
		},
	)
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	wantCode int
	wantData []byte
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func jsonBytesEqual(b1, b2 []byte) (bool, error) {
	var j1, j2 interface{}
	if err := json.Unmarshal(b1, &j1); err != nil {
		return false, err
	}
	if err := json.Unmarshal(b2, &j2); err != nil {
		return false, err
	}
	return reflect.DeepEqual(j1, j2), nil
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	if rec.Code != tt.wantCode {
		t.Errorf("failed! code = %v; wantCode %v", rec.Code, tt.wantCode)
	}
	ok, err := jsonBytesEqual(rec.Body.Bytes(), tt.wantData)
	if err != nil {
		t.Errorf("jsonBytesEqual() failed to compare; err %v", err)
	}
	if !ok {
		t.Errorf("failed! data = %v; wantData %v", rec.Body.String(), string(tt.wantData))
	}
}
