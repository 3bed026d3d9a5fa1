package main

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"

	"github.com/yanqian/faqbot/internal/domain/faq"
	"github.com/yanqian/faqbot/internal/infra/config"
	"github.com/yanqian/faqbot/internal/infra/faqsource"
	"github.com/yanqian/faqbot/internal/infra/faqstore"
	"github.com/yanqian/faqbot/internal/interface/terminal"
)

const testFAQ = `{
  "faq": [
    {"pregunta": "¿Cuál es el horario de atención?", "respuesta": "Lunes a viernes 7am-3pm", "categoria": "horarios", "palabras_clave": ["horario", "atención"]},
    {"pregunta": "¿Qué uniforme se usa?", "respuesta": "Uniforme de diario", "categoria": "uniforme", "palabras_clave": ["uniforme", "ropa"]}
  ]
}`

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	dataPath := filepath.Join(dir, "faq.json")
	require.NoError(t, os.WriteFile(dataPath, []byte(testFAQ), 0o600))
	cfgPath := filepath.Join(dir, "config.yaml")
	cfg := "faq:\n  dataPath: " + dataPath + "\nterminal:\n  color: never\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(cfg), 0o600))

	t.Setenv("CONFIG_PATH", "")
	t.Setenv("ENV_FILE", "")
	t.Setenv("FAQ_DATA_PATH", "")
	t.Setenv("LOG_LEVEL", "error")
	return cfgPath
}

func execute(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetIn(strings.NewReader(stdin))
	require.NoError(t, cmd.ExecuteContext(context.Background()))
	return out.String()
}

func TestAskCommand(t *testing.T) {
	cfgPath := setupEnv(t)
	out := execute(t, "", "--config", cfgPath, "ask", "Horario", "de", "atención")
	require.Equal(t, "Lunes a viernes 7am-3pm\n", out)
}

func TestAskCommandJSON(t *testing.T) {
	cfgPath := setupEnv(t)
	out := execute(t, "", "--config", cfgPath, "ask", "--json", "piscina olimpica")

	var resp faq.Response
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Equal(t, faq.OutcomeNotFound, resp.Outcome)
	require.Equal(t, faq.NotFoundCategory, resp.Category)
	require.Equal(t, faq.DefaultNotFoundAnswer, resp.Reply)
}

func TestCategoriesCommand(t *testing.T) {
	cfgPath := setupEnv(t)
	out := execute(t, "", "--config", cfgPath, "categories")
	require.Equal(t, "AVAILABLE CATEGORIES:\n1. Horarios\n2. Uniforme\n", out)
}

func TestChatCommand(t *testing.T) {
	cfgPath := setupEnv(t)
	out := execute(t, "uniforme\nsalir\n", "--config", cfgPath, "chat")
	require.Contains(t, out, "Bot: Uniforme de diario\n")
	require.Contains(t, out, terminal.DefaultTexts.Farewell)
}

func TestChatCommandWithoutData(t *testing.T) {
	cfgPath := setupEnv(t)
	missing := filepath.Join(t.TempDir(), "missing.json")
	out := execute(t, "horario\n", "--config", cfgPath, "--data", missing, "chat")
	require.Contains(t, out, terminal.DefaultTexts.Unavailable)
	require.NotContains(t, out, "You:")
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestProvideFAQStore(t *testing.T) {
	ctx := context.Background()

	store, cleanup := provideFAQStore(ctx, &config.Config{}, testLogger())
	require.IsType(t, &faqstore.MemoryStore{}, store)
	cleanup()

	mr := miniredis.RunT(t)
	cfg := &config.Config{FAQ: config.FAQConfig{Redis: config.RedisConfig{Enabled: true, Addr: mr.Addr(), Prefix: "bot"}}}
	store, cleanup = provideFAQStore(ctx, cfg, testLogger())
	defer cleanup()
	require.IsType(t, &faqstore.ValkeyStore{}, store)
	require.NoError(t, store.IncrementQuery(ctx, "horario", "horario", true))
	require.True(t, mr.Exists("bot:trending"))

	mr.Close()
	cfg.FAQ.Redis.Addr = "127.0.0.1:1"
	fallback, cleanupFallback := provideFAQStore(ctx, cfg, testLogger())
	defer cleanupFallback()
	require.IsType(t, &faqstore.MemoryStore{}, fallback)
}

func TestBuildValkeyOptions(t *testing.T) {
	opt, err := buildValkeyOptions(&config.Config{FAQ: config.FAQConfig{Redis: config.RedisConfig{Addr: "redis://localhost:6380/2"}}})
	require.NoError(t, err)
	require.Equal(t, []string{"localhost:6380"}, opt.InitAddress)
	require.Equal(t, 2, opt.SelectDB)
	require.True(t, opt.DisableCache)
}

func TestProvideFAQSetRecoversFromLoadError(t *testing.T) {
	src := faqsource.NewFileSource(filepath.Join(t.TempDir(), "missing.json"))
	set := provideFAQSet(context.Background(), src, testLogger())
	require.True(t, set.Empty())
}

func TestProvideFAQSetFromStaticSource(t *testing.T) {
	src := faqsource.NewStaticSource("seed", []faq.Record{
		{Question: "horario de atencion", Answer: "Lunes a viernes", Category: "horarios"},
	})
	set := provideFAQSet(context.Background(), src, testLogger())
	require.Equal(t, 1, set.Len())
	require.Equal(t, []string{"horarios"}, set.Categories())
}
