package main

// frontendHTML is the embedded frontend page. It routes client-side per
// the URL contract: plain root renders the main view; ticketWindow=true
// with a #/ticket/<id> fragment renders the ticket detail view of a
// satellite window. The IPC token arrives on the main window URL and is
// shared with satellite windows through localStorage (same origin).
const frontendHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>ticketdesk</title>
<style>
* { margin: 0; padding: 0; box-sizing: border-box; }
body {
    font-family: -apple-system, BlinkMacSystemFont, sans-serif;
    background: #1e1e1e;
    color: #e0e0e0;
    padding: 24px 32px;
}
h1 { font-size: 20px; font-weight: 600; margin-bottom: 16px; }
h2 { font-size: 15px; font-weight: 600; margin: 20px 0 10px; color: #ccc; }
input[type="text"] {
    padding: 6px 8px;
    background: #2d2d2d;
    border: 1px solid #444;
    border-radius: 4px;
    color: #e0e0e0;
    font-size: 13px;
}
input[type="text"]:focus { outline: none; border-color: #0078d4; }
.btn {
    padding: 6px 16px;
    background: #0078d4;
    color: white;
    border: none;
    border-radius: 4px;
    font-size: 13px;
    cursor: pointer;
}
.btn:hover { background: #006cbd; }
.row { display: flex; gap: 8px; align-items: center; margin: 8px 0; }
.card {
    background: #252525;
    border: 1px solid #333;
    border-radius: 6px;
    padding: 12px 16px;
    margin: 8px 0;
    display: flex;
    justify-content: space-between;
    align-items: center;
}
.card .title { font-size: 13px; }
.card .sub { font-size: 11px; color: #888; margin-top: 2px; }
.result {
    margin: 10px 0;
    padding: 8px 12px;
    background: #1a2e1a;
    border: 1px solid #2a5a2a;
    border-radius: 4px;
    font-size: 13px;
    display: none;
}
.error {
    margin: 10px 0;
    padding: 8px 12px;
    background: #2e1a1a;
    border: 1px solid #5a2a2a;
    border-radius: 4px;
    font-size: 13px;
    display: none;
}
#disconnected {
    position: fixed;
    bottom: 12px;
    right: 12px;
    padding: 6px 12px;
    background: #5a2a2a;
    border-radius: 4px;
    font-size: 12px;
    display: none;
}
.badge {
    display: inline-block;
    padding: 2px 8px;
    background: #0078d4;
    border-radius: 10px;
    font-size: 11px;
    margin-left: 8px;
}
</style>
</head>
<body>
<div id="app"></div>
<div id="disconnected">connection lost</div>

<script>
const params = new URLSearchParams(location.search);

// The main window receives the IPC token on its URL; satellite windows
// pick it up from localStorage (same origin).
let token = params.get('ipc');
if (token) {
    localStorage.setItem('ipcToken', token);
} else {
    token = localStorage.getItem('ipcToken') || '';
}

let ws = null;
let nextId = 1;
const pending = new Map();

function connect() {
    ws = new WebSocket('ws://' + location.host + '/ipc?token=' + encodeURIComponent(token));
    ws.onmessage = (ev) => {
        const msg = JSON.parse(ev.data);
        const p = pending.get(msg.id);
        if (!p) return;
        pending.delete(msg.id);
        if (msg.ok) { p.resolve(msg.result); } else { p.reject(new Error(msg.error)); }
    };
    ws.onclose = () => {
        document.getElementById('disconnected').style.display = 'block';
        for (const p of pending.values()) p.reject(new Error('connection lost'));
        pending.clear();
    };
    ws.onopen = () => {
        document.getElementById('disconnected').style.display = 'none';
    };
}

function invoke(cmd, args) {
    return new Promise((resolve, reject) => {
        if (!ws || ws.readyState !== WebSocket.OPEN) {
            reject(new Error('not connected'));
            return;
        }
        const id = String(nextId++);
        pending.set(id, { resolve, reject });
        ws.send(JSON.stringify({ id, cmd, args }));
    });
}

function ticketIdFromHash() {
    const m = location.hash.match(/^#\/ticket\/(\d+)$/);
    return m ? m[1] : null;
}

function renderTicket(id) {
    document.title = 'Ticket #' + id;
    document.getElementById('app').innerHTML =
        '<h1>Ticket #' + id + '<span class="badge">satellite</span></h1>' +
        '<div class="card"><div>' +
        '<div class="title">Ticket #' + id + '</div>' +
        '<div class="sub">Detail view rendered from the URL fragment.</div>' +
        '</div></div>';
}

function renderMain() {
    document.title = 'ticketdesk';
    const tickets = [101, 102, 103];
    let cards = '';
    for (const id of tickets) {
        cards +=
            '<div class="card"><div>' +
            '<div class="title">Ticket #' + id + '</div>' +
            '<div class="sub">Opens in its own window; reopening focuses it.</div>' +
            '</div>' +
            '<button class="btn" onclick="openTicket(' + id + ')">Open</button></div>';
    }
    document.getElementById('app').innerHTML =
        '<h1>ticketdesk</h1>' +
        '<h2>Greet</h2>' +
        '<div class="row">' +
        '<input type="text" id="greet-name" placeholder="Your name">' +
        '<button class="btn" onclick="doGreet()">Greet</button>' +
        '</div>' +
        '<div class="result" id="greet-result"></div>' +
        '<h2>Tickets</h2>' + cards +
        '<div class="row">' +
        '<input type="text" id="ticket-id" placeholder="Ticket id">' +
        '<button class="btn" onclick="openCustom()">Open window</button>' +
        '</div>' +
        '<div class="error" id="open-error"></div>';
}

function doGreet() {
    const name = document.getElementById('greet-name').value;
    invoke('greet', { name }).then((msg) => {
        const el = document.getElementById('greet-result');
        el.textContent = msg;
        el.style.display = 'block';
    }).catch(showError);
}

function openTicket(id) {
    invoke('open_ticket_window', { ticket_id: id }).catch(showError);
}

function openCustom() {
    const raw = document.getElementById('ticket-id').value.trim();
    const id = Number(raw);
    if (!Number.isInteger(id) || id < 0 || id > 4294967295) {
        showError(new Error('ticket id must be an unsigned 32-bit integer'));
        return;
    }
    openTicket(id);
}

function showError(err) {
    const el = document.getElementById('open-error') || document.getElementById('greet-result');
    if (!el) return;
    el.textContent = err.message;
    el.style.display = 'block';
}

connect();
const satellite = params.get('ticketWindow') === 'true';
const tid = ticketIdFromHash();
if (satellite && tid !== null) {
    renderTicket(tid);
} else {
    renderMain();
}
window.addEventListener('hashchange', () => {
    const id = ticketIdFromHash();
    if (satellite && id !== null) renderTicket(id);
});
</script>
</body>
</html>
`
