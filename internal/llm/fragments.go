package llm

import (
	"strings"

	"github.com/abcideas/leadflow/internal/entity"
)

// Fragmentos de copy. Cada tabla mapea el texto del lead a una frase ya
// lista para interpolar en el cuerpo del mensaje.

var tablaDolor = []regla[string]{
	{
		frases: []string{"desorden", "caos", "muchos mensajes", "se me pierden", "no doy abasto", "no alcanzo", "saturado"},
		valor: "bajar el caos de mensajes y tener claro en un solo sitio quién te escribió, " +
			"qué pidió y en qué punto de la conversación se quedó",
	},
	{
		frases: []string{"tiempo", "horas", "manual", "manualmente", "automatizar", "automatice", "automatización", "automatizacion"},
		valor: "dejar de hacerlo todo de forma manual y recuperar horas de trabajo, " +
			"sin perder seguimiento de las oportunidades importantes",
	},
	{
		frases: []string{"no convierten", "no compran", "pocas ventas", "ventas", "cerrar", "cierres", "cierre", "tasa de conversión", "conversion"},
		valor: "entender qué contactos tienen más probabilidad de convertirse en venta " +
			"y priorizarlos en lugar de tratar todo por igual",
	},
	{
		frases: []string{"recurrente", "recurrentes", "que vuelvan", "fidelizar", "fidelidad", "retener", "retencion", "retención"},
		valor: "identificar quién ya te ha comprado y crear acciones específicas para que vuelvan, " +
			"en lugar de vivir solo de clientes nuevos",
	},
	{
		frases: []string{"equipo", "vendedores", "agentes", "comercial", "equipo de ventas", "comerciales"},
		valor: "que todo el equipo comercial vea la misma información y no se dupliquen mensajes, " +
			"evitando que dos personas contacten al mismo cliente sin saberlo",
	},
	{
		frases: []string{"excel", "hoja de cálculo", "hoja de calculo", "google sheets", "herramientas distintas", "múltiples sistemas", "varias herramientas"},
		valor: "pasar de tener la información repartida en mil sitios (Excel, chats, notas) " +
			"a un flujo simple donde puedas seguir cada oportunidad",
	},
}

const dolorGenerico = "tener un flujo de seguimiento claro, sin depender solo de la memoria y sin perder oportunidades importantes por el camino"

func detectarDolor(texto string) string {
	return primeraCoincidencia(strings.ToLower(texto), tablaDolor, dolorGenerico)
}

var tablaContexto = []regla[string]{
	{
		frases: []string{"instagram", "dm", "redes", "facebook ads", "tiktok", "social"},
		valor: "cómo conectar lo que pasa en tus redes sociales (DM, comentarios, formularios) " +
			"con un sistema donde no se pierdan las conversaciones valiosas",
	},
	{
		frases: []string{"ecommerce", "tienda online"},
		valor: "identificar qué personas pasan de solo mirar productos a realmente tener intención de compra " +
			"y acompañarlas mejor hasta el pago",
	},
	{
		frases: []string{"academia", "curso", "formación", "formacion", "webinar"},
		valor: "saber entre todos los registros de tus cursos y webinars quién está listo para una oferta de mayor valor, " +
			"sin tener que revisar uno a uno",
	},
	{
		frases: []string{"cafetería", "cafeteria", "hosteleria", "restaurante"},
		valor: "pasar de visitas puntuales a clientes recurrentes, " +
			"sabiendo quién vuelve, cada cuánto y qué tipo de comunicación les funciona mejor",
	},
	{
		frases: []string{"consultoría", "consultoria", "b2b", "empresa", "servicio"},
		valor: "tener visibilidad clara de en qué fase está cada empresa con la que hablas " +
			"y priorizar a las que están más cerca de tomar una decisión",
	},
}

const contextoGenerico = "organizar mejor tus oportunidades, tener claras las prioridades " +
	"y no depender solo de la memoria o de revisar chats antiguos para saber qué sigue"

// detectarContextoNegocio mira también empresa, para que el mensaje hable del
// negocio del lead y no solo de "leads".
func detectarContextoNegocio(lead *entity.Lead) string {
	texto := strings.ToLower(strings.Join([]string{
		lead.MensajeInicial,
		lead.Necesidades,
		lead.Empresa,
		lead.Sector,
		lead.Fuente,
	}, " "))
	return primeraCoincidencia(texto, tablaContexto, contextoGenerico)
}

// beneficioPrincipal depende solo de la etapa del funnel.
func beneficioPrincipal(etapa string) string {
	switch etapa {
	case entity.EtapaAwareness:
		return "tener claridad sobre el problema y decidir con calma si tiene sentido avanzar"
	case entity.EtapaDecision:
		return "tomar una decisión con datos claros y no solo por intuición o urgencia"
	default: // consideration
		return "bajar el caos actual y trabajar con un sistema sencillo que no te robe más tiempo"
	}
}

func construirCTA(objetivo, temperatura, canal string) string {
	var base string
	switch objetivo {
	case ObjetivoConseguirLlamada:
		base = "¿Te viene bien una llamada corta de 15 minutos para ver tu caso concreto?"
	case ObjetivoReactivar:
		base = "Si sigues interesado, dime y retomamos desde donde lo dejamos."
	default: // seguimiento
		base = "Si te parece útil, dímelo y te comparto un ejemplo aplicado a un caso parecido al tuyo."
	}

	switch temperatura {
	case entity.TempCaliente:
		// "en algún momento" no aparece hoy en ningún CTA base; la
		// sustitución queda para cuando alguna plantilla lo use.
		base = strings.ReplaceAll(base, "en algún momento", "en estos días")
	case entity.TempFrio:
		base = strings.ReplaceAll(base, "para ver tu caso concreto", "cuando tú veas que tiene sentido, sin compromiso")
	}

	if canal == CanalWhatsapp {
		return strings.ReplaceAll(base, "dímelo", "me dices") + " 🙂"
	}
	return base
}

// saludoYCierre devuelve el par (saludo, cierre) según el canal: formal para
// email y linkedin, cercano para el resto.
func saludoYCierre(canal, nombre string) (string, string) {
	if canal == CanalEmail || canal == CanalLinkedin {
		return "Hola " + nombre + ",", "Un saludo,\nEquipo ABC Ideas"
	}
	return "Hola " + nombre + " 👋", "Quedo pendiente,\nEquipo ABC Ideas"
}
