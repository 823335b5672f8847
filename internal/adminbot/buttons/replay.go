package buttons

const (
	//main admin menu
	Dashboard    = "📊 Дашборд"
	Users        = "👥 Пользователи"
	RedPackets   = "🧧 Конверты"
	Transactions = "📒 Операции"
	Analytics    = "📈 Аналитика"
	TelegramMenu = "✈️ Telegram"
	Reports      = "📑 Отчеты"
	Security     = "🛡 Безопасность"

	//default btns
	Setting = "⚙️ Настройки"
	Profile = "🧑‍💻 Профиль"
)
