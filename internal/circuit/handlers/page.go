package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v3"
)

// ============================================================
// Page Handler
// ============================================================

// PageHandler отдаёт страницу с доской. Вся логика схемы живёт на сервере,
// страница только двигает плитки и рисует ответ.
type PageHandler struct {
	eventsURL string
}

func NewPageHandler(eventsURL string) *PageHandler {
	return &PageHandler{eventsURL: eventsURL}
}

func (h *PageHandler) Index(c fiber.Ctx) error {
	page := strings.NewReplacer("{{EVENTS_URL}}", h.eventsURL).Replace(indexPage)
	c.Type("html")
	return c.SendString(page)
}

const indexPage = `<!doctype html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="description" content="Circuit Simulator">
  <title>Circuit Simulator</title>
  <style>
    body { font-family: sans-serif; display: flex; flex-direction: column; align-items: center; }
    #grid { position: relative; background: #fafafa; border: 1px solid #ddd; }
    .tile { position: absolute; box-sizing: border-box; cursor: grab; touch-action: none; }
    #source { background: #d9d9d9; border-top: 3px solid green; border-bottom: 3px solid blue; }
    #resistor { background: #faf191; }
    #led { background: #fff; border-left: 3px solid green; border-right: 3px solid blue; }
    #led.lit { box-shadow: 0 0 50px 20px red; border-top: 6px solid red; border-bottom: 6px solid red; }
  </style>
</head>
<body>
<h1>Circuit Simulator</h1>
<div id="grid"></div>
<script>
(async () => {
  const grid = document.getElementById('grid');
  const api = '/api/v1/boards';
  const post = (url, body) => fetch(url, {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify(body),
  }).then(r => r.json());

  let state = await post(api, {viewport_width: window.innerWidth, viewport_height: window.innerHeight});
  const cell = state.cell_size;
  grid.style.width = (state.columns * cell) + 'px';
  grid.style.height = (state.rows * cell) + 'px';

  const tiles = {};
  for (const e of state.elements) {
    const el = document.createElement('div');
    el.id = e.id;
    el.className = 'tile';
    const horizontal = e.orientation === 'horizontal';
    el.style.width = (horizontal ? e.size * cell : cell) + 'px';
    el.style.height = (horizontal ? cell : e.size * cell) + 'px';
    grid.appendChild(el);
    tiles[e.id] = el;
    drag(el, e);
  }

  let revision = -1;
  let dragging = null;
  function render(s) {
    // Ответы и события могут прийти не по порядку: старые ревизии пропускаем.
    if (!s || s.revision < revision) return;
    revision = s.revision;
    state = s;
    for (const e of s.elements) {
      if (e.id === dragging) continue;
      tiles[e.id].style.left = (e.x * cell) + 'px';
      tiles[e.id].style.top = (e.y * cell) + 'px';
    }
    tiles.led.classList.toggle('lit', s.lit);
  }

  function drag(el, e) {
    el.addEventListener('pointerdown', (ev) => {
      el.setPointerCapture(ev.pointerId);
      dragging = e.id;
      const ox = ev.clientX - el.offsetLeft, oy = ev.clientY - el.offsetTop;
      const started = post(api + '/' + state.id + '/drag-start', {element: e.id}).then(render, () => {});
      const move = (mv) => {
        el.style.left = Math.round((mv.clientX - ox) / cell) * cell + 'px';
        el.style.top = Math.round((mv.clientY - oy) / cell) * cell + 'px';
      };
      const up = async () => {
        el.removeEventListener('pointermove', move);
        const x = el.offsetLeft, y = el.offsetTop;
        dragging = null;
        // drag-stop уходит только после того, как сервер принял drag-start.
        await started;
        render(await post(api + '/' + state.id + '/drag-stop', {element: e.id, x: x, y: y}));
      };
      el.addEventListener('pointermove', move);
      el.addEventListener('pointerup', up, {once: true});
    });
  }

  render(state);

  const eventsURL = '{{EVENTS_URL}}';
  if (eventsURL) {
    const source = new EventSource(eventsURL + '?stream=' + state.id);
    source.addEventListener('drag-start', (m) => render(JSON.parse(m.data)));
    source.addEventListener('drag-stop', (m) => render(JSON.parse(m.data)));
    source.addEventListener('closed', () => source.close());
  }
})();
</script>
</body>
</html>`
