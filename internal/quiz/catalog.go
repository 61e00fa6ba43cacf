package quiz

// Category is one of the four fixed solution types a diagnostic can
// recommend. The enumeration order is load-bearing: score ties resolve to
// the earliest category in Categories.
type Category string

const (
	CategoryLanding   Category = "landing"
	CategoryEcommerce Category = "ecommerce"
	CategorySistema   Category = "sistema"
	CategoryChatbot   Category = "chatbot"
)

// Categories is the fixed enumeration, in tie-break order.
var Categories = []Category{CategoryLanding, CategoryEcommerce, CategorySistema, CategoryChatbot}

// QuestionType distinguishes single-choice from multiple-choice questions.
type QuestionType string

const (
	TypeSingle   QuestionType = "single"
	TypeMultiple QuestionType = "multiple"
)

// Option is one selectable answer. Weight maps categories to the score each
// selection contributes; an option may push several categories at once.
type Option struct {
	Value  string           `json:"value"`
	Label  string           `json:"label"`
	Weight map[Category]int `json:"weight,omitempty"`
}

// Question is one entry in the immutable diagnostic catalog.
type Question struct {
	ID       string       `json:"id"`
	Question string       `json:"question"`
	Type     QuestionType `json:"type"`
	Options  []Option     `json:"options"`
	Required bool         `json:"required"`
	Category string       `json:"category"`
}

// SolutionProfile is the marketing copy attached to a recommended category.
type SolutionProfile struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Benefits    []string `json:"benefits"`
	Plans       []string `json:"plans"`
}

// Questions is the fixed question bank. Defined at build time; never edited
// at runtime.
var Questions = []Question{
	// SECCION 1: informacion del negocio
	{
		ID:       "business_type",
		Question: "¿Cuál es el tipo de tu negocio?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "servicios", Label: "Servicios profesionales", Weight: map[Category]int{CategoryLanding: 2, CategorySistema: 1}},
			{Value: "comercio", Label: "Comercio / Retail", Weight: map[Category]int{CategoryEcommerce: 3, CategoryLanding: 1}},
			{Value: "restaurante", Label: "Restaurante / Food service", Weight: map[Category]int{CategoryLanding: 2, CategoryEcommerce: 1, CategoryChatbot: 2}},
			{Value: "salud", Label: "Salud / Bienestar", Weight: map[Category]int{CategorySistema: 2, CategoryLanding: 2}},
			{Value: "educacion", Label: "Educación / Capacitación", Weight: map[Category]int{CategorySistema: 2, CategoryLanding: 1}},
			{Value: "manufactura", Label: "Manufactura / Producción", Weight: map[Category]int{CategorySistema: 3, CategoryLanding: 1}},
			{Value: "otro", Label: "Otro", Weight: map[Category]int{CategoryLanding: 1}},
		},
		Required: true,
		Category: "negocio",
	},
	{
		ID:       "business_size",
		Question: "¿Cuántos empleados tiene tu empresa?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "solo", Label: "Solo yo", Weight: map[Category]int{CategoryLanding: 2, CategoryChatbot: 1}},
			{Value: "micro", Label: "2-5 empleados", Weight: map[Category]int{CategoryLanding: 2, CategorySistema: 1}},
			{Value: "pequena", Label: "6-20 empleados", Weight: map[Category]int{CategorySistema: 2, CategoryLanding: 1}},
			{Value: "mediana", Label: "21-50 empleados", Weight: map[Category]int{CategorySistema: 3}},
			{Value: "grande", Label: "Más de 50 empleados", Weight: map[Category]int{CategorySistema: 3, CategoryChatbot: 2}},
		},
		Required: true,
		Category: "negocio",
	},
	{
		ID:       "current_web",
		Question: "¿Tu negocio tiene presencia web actualmente?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "ninguna", Label: "No tengo nada", Weight: map[Category]int{CategoryLanding: 3}},
			{Value: "redes", Label: "Solo redes sociales", Weight: map[Category]int{CategoryLanding: 3, CategoryChatbot: 1}},
			{Value: "basica", Label: "Página web básica/desactualizada", Weight: map[Category]int{CategoryLanding: 2}},
			{Value: "funcional", Label: "Sitio web funcional", Weight: map[Category]int{CategorySistema: 1, CategoryEcommerce: 1}},
			{Value: "avanzada", Label: "Sitio web con funcionalidades avanzadas", Weight: map[Category]int{CategorySistema: 2, CategoryChatbot: 1}},
		},
		Required: true,
		Category: "situacion",
	},

	// SECCION 2: objetivos
	{
		ID:       "main_goal",
		Question: "¿Cuál es tu objetivo principal ahora mismo?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "visibilidad", Label: "Aumentar visibilidad y conseguir clientes", Weight: map[Category]int{CategoryLanding: 3, CategoryChatbot: 1}},
			{Value: "ventas_online", Label: "Vender productos en línea", Weight: map[Category]int{CategoryEcommerce: 3}},
			{Value: "automatizar", Label: "Automatizar procesos internos", Weight: map[Category]int{CategorySistema: 3, CategoryChatbot: 2}},
			{Value: "atencion", Label: "Mejorar atención al cliente", Weight: map[Category]int{CategoryChatbot: 3, CategorySistema: 1}},
			{Value: "escalar", Label: "Escalar operaciones", Weight: map[Category]int{CategorySistema: 3, CategoryEcommerce: 1}},
		},
		Required: true,
		Category: "objetivos",
	},
	{
		ID:       "secondary_goals",
		Question: "¿Qué otros objetivos te gustaría lograr? (Selecciona todos los que apliquen)",
		Type:     TypeMultiple,
		Options: []Option{
			{Value: "leads", Label: "Capturar más leads/contactos", Weight: map[Category]int{CategoryLanding: 2, CategoryChatbot: 1}},
			{Value: "reservas", Label: "Sistema de reservas/citas", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "inventario", Label: "Control de inventario", Weight: map[Category]int{CategorySistema: 2, CategoryEcommerce: 1}},
			{Value: "facturacion", Label: "Facturación automática", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "reportes", Label: "Reportes y métricas", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "whatsapp", Label: "Atención por WhatsApp 24/7", Weight: map[Category]int{CategoryChatbot: 3}},
		},
		Required: false,
		Category: "objetivos",
	},

	// SECCION 3: problemas actuales
	{
		ID:       "main_problem",
		Question: "¿Cuál es el mayor problema que enfrentas actualmente?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "no_clientes", Label: "No llegan suficientes clientes", Weight: map[Category]int{CategoryLanding: 3, CategoryChatbot: 1}},
			{Value: "tiempo", Label: "Pierdo mucho tiempo en tareas repetitivas", Weight: map[Category]int{CategorySistema: 3, CategoryChatbot: 2}},
			{Value: "desorganizacion", Label: "Desorganización en procesos", Weight: map[Category]int{CategorySistema: 3}},
			{Value: "atencion_lenta", Label: "No puedo responder rápido a clientes", Weight: map[Category]int{CategoryChatbot: 3}},
			{Value: "ventas_fisicas", Label: "Solo vendo de forma presencial", Weight: map[Category]int{CategoryEcommerce: 3, CategoryLanding: 1}},
			{Value: "competencia", Label: "La competencia me está ganando online", Weight: map[Category]int{CategoryLanding: 2, CategoryEcommerce: 2}},
		},
		Required: true,
		Category: "problemas",
	},
	{
		ID:       "messages_volume",
		Question: "¿Cuántos mensajes de clientes recibes aproximadamente al día?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "pocos", Label: "Menos de 10", Weight: map[Category]int{CategoryLanding: 1}},
			{Value: "moderado", Label: "10-30 mensajes", Weight: map[Category]int{CategoryChatbot: 1}},
			{Value: "muchos", Label: "30-100 mensajes", Weight: map[Category]int{CategoryChatbot: 2}},
			{Value: "masivo", Label: "Más de 100 mensajes", Weight: map[Category]int{CategoryChatbot: 3, CategorySistema: 1}},
		},
		Required: true,
		Category: "problemas",
	},

	// SECCION 4: necesidades especificas
	{
		ID:       "need_ecommerce",
		Question: "¿Necesitas vender productos físicos o digitales en línea?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "no", Label: "No, solo servicios", Weight: map[Category]int{CategoryLanding: 1}},
			{Value: "pocos", Label: "Sí, pocos productos (menos de 50)", Weight: map[Category]int{CategoryEcommerce: 2}},
			{Value: "catalogo", Label: "Sí, catálogo mediano (50-500)", Weight: map[Category]int{CategoryEcommerce: 3}},
			{Value: "grande", Label: "Sí, catálogo grande (+500)", Weight: map[Category]int{CategoryEcommerce: 3, CategorySistema: 1}},
		},
		Required: true,
		Category: "necesidades",
	},
	{
		ID:       "need_system",
		Question: "¿Qué procesos te gustaría digitalizar?",
		Type:     TypeMultiple,
		Options: []Option{
			{Value: "ninguno", Label: "Ninguno por ahora", Weight: map[Category]int{CategoryLanding: 1}},
			{Value: "clientes", Label: "Gestión de clientes (CRM)", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "inventario", Label: "Control de inventario", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "empleados", Label: "Gestión de empleados", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "contabilidad", Label: "Contabilidad básica", Weight: map[Category]int{CategorySistema: 2}},
			{Value: "proyectos", Label: "Gestión de proyectos", Weight: map[Category]int{CategorySistema: 2}},
		},
		Required: false,
		Category: "necesidades",
	},

	// SECCION 5: presupuesto y tiempo
	{
		ID:       "budget",
		Question: "¿Cuál es tu presupuesto aproximado para esta inversión?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "bajo", Label: "Menos de RD$30,000", Weight: map[Category]int{CategoryLanding: 2}},
			{Value: "medio_bajo", Label: "RD$30,000 - RD$80,000", Weight: map[Category]int{CategoryLanding: 2, CategoryChatbot: 1}},
			{Value: "medio", Label: "RD$80,000 - RD$150,000", Weight: map[Category]int{CategoryEcommerce: 2, CategorySistema: 1}},
			{Value: "medio_alto", Label: "RD$150,000 - RD$300,000", Weight: map[Category]int{CategorySistema: 2, CategoryEcommerce: 2}},
			{Value: "alto", Label: "Más de RD$300,000", Weight: map[Category]int{CategorySistema: 3, CategoryEcommerce: 2}},
		},
		Required: true,
		Category: "presupuesto",
	},
	{
		ID:       "urgency",
		Question: "¿Qué tan urgente es implementar esta solución?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "explorando", Label: "Solo estoy explorando opciones"},
			{Value: "trimestre", Label: "En los próximos 3 meses"},
			{Value: "mes", Label: "Este mes"},
			{Value: "urgente", Label: "Lo antes posible"},
		},
		Required: true,
		Category: "presupuesto",
	},

	// SECCION 6: preferencias
	{
		ID:       "tech_comfort",
		Question: "¿Qué tan cómodo te sientes con la tecnología?",
		Type:     TypeSingle,
		Options: []Option{
			{Value: "basico", Label: "Básico - Necesito algo muy simple", Weight: map[Category]int{CategoryLanding: 1}},
			{Value: "intermedio", Label: "Intermedio - Puedo aprender"},
			{Value: "avanzado", Label: "Avanzado - Me gusta la tecnología", Weight: map[Category]int{CategorySistema: 1}},
		},
		Required: true,
		Category: "preferencias",
	},
}

// Solutions maps each category to its marketing profile.
var Solutions = map[Category]SolutionProfile{
	CategoryLanding: {
		Name:        "Landing Page / Sitio Web",
		Description: "Página web profesional optimizada para convertir visitantes en clientes.",
		Benefits: []string{
			"Presencia profesional 24/7",
			"Optimización para buscadores (SEO)",
			"Formularios de contacto",
			"Diseño responsive",
		},
		Plans: []string{"La Chispa", "La Fragua", "Acero"},
	},
	CategoryEcommerce: {
		Name:        "E-commerce / Tienda Online",
		Description: "Plataforma completa para vender productos en línea.",
		Benefits: []string{
			"Catálogo de productos",
			"Carrito de compras",
			"Pasarela de pagos",
			"Gestión de inventario",
		},
		Plans: []string{"Tienda Start", "E-commerce Pro", "Marketplace"},
	},
	CategorySistema: {
		Name:        "Sistema a Medida",
		Description: "Software personalizado para automatizar y gestionar tu negocio.",
		Benefits: []string{
			"Automatización de procesos",
			"Reportes personalizados",
			"Integración con otras herramientas",
			"Escalable según crecimiento",
		},
		Plans: []string{"Agenda Simple", "Gestión Pro", "Sistema Administrativo"},
	},
	CategoryChatbot: {
		Name:        "Chatbot / Automatización IA",
		Description: "Asistente virtual para atender clientes automáticamente.",
		Benefits: []string{
			"Atención 24/7",
			"Respuestas instantáneas",
			"Captura de leads automática",
			"Integración con WhatsApp",
		},
		Plans: []string{"El Portero", "Bot Captador", "NeuroBot"},
	},
}

// FindQuestion returns the catalog question with the given id, or nil when
// the id is unknown (stale client payloads are tolerated, not rejected).
func FindQuestion(id string) *Question {
	for i := range Questions {
		if Questions[i].ID == id {
			return &Questions[i]
		}
	}
	return nil
}

func (q *Question) findOption(value string) *Option {
	for i := range q.Options {
		if q.Options[i].Value == value {
			return &q.Options[i]
		}
	}
	return nil
}
